package serviceImp

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog/repository"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog/service"
)

var ErrIncompleteCSV = errors.New("zones and crops csv must be given together")

type catalogSvc struct {
	repo repository.CatalogRepository
	log  *zap.Logger
}

func NewCatalogService(r repository.CatalogRepository, log *zap.Logger) service.CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &catalogSvc{repo: r, log: log}
}

// Read loads a catalog from the configured files, or the built-in tables
// when none are set.
func Read(src service.Sources) (*catalog.Catalog, error) {
	switch {
	case src.Workbook != "":
		return catalog.LoadWorkbook(src.Workbook)
	case src.ZonesCSV != "" && src.CropsCSV != "":
		return catalog.LoadCSV(src.ZonesCSV, src.CropsCSV)
	case src.ZonesCSV != "" || src.CropsCSV != "":
		return nil, ErrIncompleteCSV
	default:
		return catalog.Default(), nil
	}
}

func (s *catalogSvc) Bootstrap(src service.Sources) (*catalog.Catalog, error) {
	zones, crops, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	if zones == 0 && crops == 0 {
		s.log.Info("seeding empty catalog store", zap.Bool("builtin", src.Empty()))
		if _, err := s.Import(src); err != nil {
			return nil, err
		}
	} else if !src.Empty() {
		s.log.Info("catalog store already populated, configured sources skipped",
			zap.String("workbook", src.Workbook),
			zap.String("zones_csv", src.ZonesCSV),
			zap.String("crops_csv", src.CropsCSV),
			zap.Int64("stored_zones", zones),
			zap.Int64("stored_crops", crops),
		)
	}
	return s.Load()
}

func (s *catalogSvc) Import(src service.Sources) (*catalog.Catalog, error) {
	c, err := Read(src)
	if err != nil {
		return nil, err
	}
	if err := s.store(c); err != nil {
		return nil, err
	}
	s.log.Info("catalog imported",
		zap.String("workbook", src.Workbook),
		zap.String("zones_csv", src.ZonesCSV),
		zap.String("crops_csv", src.CropsCSV),
		zap.Int("zones", len(c.Zones())),
		zap.Int("crops", len(c.Crops())),
	)
	return c, nil
}

func (s *catalogSvc) store(c *catalog.Catalog) error {
	defs := c.Zones()
	zones := make([]entities.ZoneRow, len(defs))
	for i, z := range defs {
		zones[i] = entities.NewZoneRow(i, z)
	}
	profiles := c.Crops()
	crops := make([]entities.CropRow, len(profiles))
	for i, p := range profiles {
		crops[i] = entities.NewCropRow(i, p)
	}
	if err := s.repo.ReplaceAll(zones, crops); err != nil {
		return fmt.Errorf("store catalog: %w", err)
	}
	return nil
}

func (s *catalogSvc) Load() (*catalog.Catalog, error) {
	zrows, err := s.repo.ListZones()
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	crows, err := s.repo.ListCrops()
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	zones := make([]entities.ClimateZoneDef, len(zrows))
	for i, r := range zrows {
		zones[i] = r.Def()
	}
	crops := make([]entities.CropProfile, len(crows))
	for i, r := range crows {
		crops[i] = r.Profile()
	}
	return catalog.New(zones, crops)
}
