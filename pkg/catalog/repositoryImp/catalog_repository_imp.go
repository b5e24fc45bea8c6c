package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) Count() (int64, int64, error) {
	var zones, crops int64
	if err := r.db.Model(&entities.ZoneRow{}).Count(&zones).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&entities.CropRow{}).Count(&crops).Error; err != nil {
		return 0, 0, err
	}
	return zones, crops, nil
}

func (r *catalogRepo) ReplaceAll(zones []entities.ZoneRow, crops []entities.CropRow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.ZoneRow{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.CropRow{}).Error; err != nil {
			return err
		}
		// gorm rejects Create on an empty slice
		if len(crops) > 0 {
			if err := tx.Create(&crops).Error; err != nil {
				return err
			}
		}
		if len(zones) > 0 {
			if err := tx.Create(&zones).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *catalogRepo) ListZones() ([]entities.ZoneRow, error) {
	var out []entities.ZoneRow
	if err := r.db.Order("position ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) ListCrops() ([]entities.CropRow, error) {
	var out []entities.CropRow
	if err := r.db.Order("position ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
