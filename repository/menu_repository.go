package repository

import (
	"context"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GetByID โหลดเมนูพร้อมร้าน (ต้องใช้ country ของร้าน)
func (r *MenuRepository) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.WithContext(ctx).Preload("Restaurant").First(&m, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "menu item %s not found", id)
	}
	return &m, nil
}

// GetByIDs ไม่ error ถ้าบาง id ไม่มี; ผู้เรียกต้องเช็คเอง
func (r *MenuRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.MenuItem
	err := r.DB.WithContext(ctx).Preload("Restaurant").Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

// UpdatePrice ไม่กระทบ order ที่สร้างไปแล้ว (order เก็บราคา snapshot)
func (r *MenuRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).Where("id = ?", id).Update("price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "menu item %s not found", id)
	}
	return nil
}
