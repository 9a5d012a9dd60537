package repository

import (
	"context"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "restaurant %s not found", id)
	}
	return &rest, nil
}

// List คืนร้านเรียงตามชื่อ; country ว่าง = ทุกประเทศ
func (r *RestaurantRepository) List(ctx context.Context, country string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	q := r.DB.WithContext(ctx).Model(&entity.Restaurant{})
	if country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", country)
	}
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}
