package repository

import (
	"context"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: tx} }

// ดึง Payment จาก OrderID
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		return nil, notFound(err, "payment for order %s not found", orderID)
	}
	return &p, nil
}

// CreateIfAbsent ใช้ unique(order_id); คืน false ถ้ามี payment อยู่แล้ว
func (r *PaymentRepository) CreateIfAbsent(ctx context.Context, p *entity.Payment) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_id"}}, DoNothing: true}).
		Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkPaid เปลี่ยนเป็น SUCCESS ได้ครั้งเดียว; คืน false ถ้าไม่มีแถวหรือจ่ายแล้ว
func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID string, method entity.PaymentMethod, amount decimal.Decimal, paidAt time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Payment{}).
		Where("order_id = ? AND status <> ?", orderID, entity.PaymentSuccess).
		Updates(map[string]any{
			"method":  method,
			"status":  entity.PaymentSuccess,
			"amount":  amount,
			"paid_at": paidAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateMethod แก้ได้เฉพาะ payment ที่ยังไม่ SUCCESS
func (r *PaymentRepository) UpdateMethod(ctx context.Context, orderID string, method entity.PaymentMethod) (bool, error) {
	res := r.DB.WithContext(ctx).Model(&entity.Payment{}).
		Where("order_id = ? AND status <> ?", orderID, entity.PaymentSuccess).
		Update("method", method)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
