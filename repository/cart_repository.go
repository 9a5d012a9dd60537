package repository

import (
	"context"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// WithTx คืน repository ที่ผูกกับ transaction
func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository { return &CartRepository{DB: tx} }

// FindByUser คืน NotFound ถ้า user ยังไม่เคยมีตะกร้า
func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ?", userID).
		First(&c).Error
	if err != nil {
		return nil, notFound(err, "cart for user %s not found", userID)
	}
	return &c, nil
}

// GetOrCreate สร้างตะกร้าว่างครั้งแรก (upsert ตาม user_id ที่ unique)
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Cart, error) {
	c := entity.Cart{UserID: userID}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&c).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, userID)
}

// Touch เขียนแถว cart ก่อน เพื่อให้ mutation ของ user เดียวกันเรียงกันใน transaction
func (r *CartRepository) Touch(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Update("updated_at", time.Now().UTC()).Error
}

func (r *CartRepository) SetRestaurant(ctx context.Context, cartID, restaurantID string) error {
	return r.DB.WithContext(ctx).Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Update("restaurant_id", restaurantID).Error
}

// UpsertItem รวม quantity ถ้าเมนูเดิมมีอยู่แล้ว (atomic ใน SQL)
func (r *CartRepository) UpsertItem(ctx context.Context, row *entity.CartItem) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":          gorm.Expr("cart_items.quantity + excluded.quantity"),
				"unit_price_at_add": gorm.Expr("excluded.unit_price_at_add"),
				"updated_at":        time.Now().UTC(),
			}),
		}).
		Create(row).Error
}

func (r *CartRepository) GetItem(ctx context.Context, cartID, menuItemID string) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&it).Error
	if err != nil {
		return nil, notFound(err, "menu item %s is not in the cart", menuItemID)
	}
	return &it, nil
}

func (r *CartRepository) UpdateQty(ctx context.Context, cartID, menuItemID string, qty int) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&entity.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Updates(map[string]any{"quantity": qty, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, menuItemID string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ConsumeItem หัก qty ออกจากรายการ; รายการที่เหลือ <= 0 ถูกลบ
func (r *CartRepository) ConsumeItem(ctx context.Context, cartID, menuItemID string, qty int) error {
	db := r.DB.WithContext(ctx)
	if err := db.Model(&entity.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Updates(map[string]any{"quantity": gorm.Expr("quantity - ?", qty), "updated_at": time.Now().UTC()}).Error; err != nil {
		return err
	}
	return db.Where("cart_id = ? AND menu_item_id = ? AND quantity <= 0", cartID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) DeleteItems(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

// ResetRestaurantIfEmpty ถ้าตะกร้าว่างแล้ว -> ล้าง restaurant_id ให้พร้อมรับร้านใหม่
func (r *CartRepository) ResetRestaurantIfEmpty(ctx context.Context, cartID string) error {
	return r.DB.WithContext(ctx).Exec(`
		UPDATE carts SET restaurant_id = ''
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id)
	`, cartID).Error
}
