package repository

import "github.com/akhilm2223/vertical-farmingg/entities"

type CatalogRepository interface {
	// Count returns the number of stored zones and crops.
	Count() (zones, crops int64, err error)
	// ReplaceAll swaps both tables in one transaction.
	ReplaceAll(zones []entities.ZoneRow, crops []entities.CropRow) error
	ListZones() ([]entities.ZoneRow, error)
	ListCrops() ([]entities.CropRow, error)
}
