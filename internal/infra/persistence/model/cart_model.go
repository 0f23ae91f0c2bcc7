package model

import "time"

// CartItemModel mirrors the 'cart_items' table. The unique index on
// (user_id, product_id) backs the one-row-per-pair invariant.
type CartItemModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int    `gorm:"not null;default:1"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
