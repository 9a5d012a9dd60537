package repository

import (
	"context"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository { return &OrderRepository{DB: tx} }

// OrderQuery ฟิลด์ว่าง = ไม่กรอง
type OrderQuery struct {
	OwnerID string
	Country string
	Status  entity.OrderStatus
	Limit   int
}

func preloadLines(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }

// Create สร้าง order พร้อม items (gorm สร้าง association ใน transaction เดียว)
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", preloadLines).
		Preload("Payment").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "order %s not found", id)
	}
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context, q OrderQuery) ([]entity.Order, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	db := r.DB.WithContext(ctx).Model(&entity.Order{})
	if q.OwnerID != "" {
		db = db.Where("user_id = ?", q.OwnerID)
	}
	if q.Country != "" {
		db = db.Where("LOWER(restaurant_country) = LOWER(?)", q.Country)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	var out []entity.Order
	err := db.Preload("Items", preloadLines).
		Preload("Payment").
		Order("created_at DESC").
		Limit(q.Limit).
		Find(&out).Error
	return out, err
}

// UpdateGuarded อัปเดตเฉพาะเมื่อ status อยู่ใน from และ version ตรงกับที่อ่านมา
// (optimistic lock). คืน false ถ้ามีคนอื่นเปลี่ยนไปก่อน
func (r *OrderRepository) UpdateGuarded(ctx context.Context, orderID string, version int, from []entity.OrderStatus, updates map[string]any) (bool, error) {
	set := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		set[k] = v
	}
	set["version"] = gorm.Expr("version + 1")

	res := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND version = ? AND status IN ?", orderID, version, from).
		Updates(set)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
