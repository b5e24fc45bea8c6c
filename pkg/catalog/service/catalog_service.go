package service

import "github.com/akhilm2223/vertical-farmingg/pkg/catalog"

// Sources names the files a catalog may be read from. A workbook wins over
// the CSV pair; with no files the built-in tables are used.
type Sources struct {
	Workbook string
	ZonesCSV string
	CropsCSV string
}

func (s Sources) Empty() bool {
	return s.Workbook == "" && s.ZonesCSV == "" && s.CropsCSV == ""
}

type CatalogService interface {
	// Bootstrap seeds an empty store and returns the stored catalog.
	Bootstrap(src Sources) (*catalog.Catalog, error)
	// Import validates the files and replaces the stored tables.
	Import(src Sources) (*catalog.Catalog, error)
	// Load reads and validates the stored tables.
	Load() (*catalog.Catalog, error)
}
