package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	BuyerID         string          `gorm:"type:varchar(255);not null;index"`
	Status          string          `gorm:"type:varchar(50);not null;default:pending"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	ShippingCity    string          `gorm:"type:varchar(100)"`
	ShippingPhone   string          `gorm:"type:varchar(20)"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. There is deliberately no
// database-level cascade from products: deleting a listing leaves the line
// with a dangling product reference, and reads tolerate the missing row.
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	SellerID  string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status    string          `gorm:"type:varchar(50);not null;default:pending"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
