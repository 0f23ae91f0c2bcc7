package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Money columns are
// NUMERIC(12,2); the image list is stored as a JSONB document.
type ProductModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	SellerID      string           `gorm:"type:varchar(255);not null;index"`
	CategoryID    *int64           `gorm:"index"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Condition     string           `gorm:"type:varchar(50);not null"`
	Images        []string         `gorm:"serializer:json;type:jsonb;not null"`
	Stock         int              `gorm:"not null;default:1;check:stock >= 0"`
	Location      string           `gorm:"type:varchar(100)"`
	IsActive      bool             `gorm:"not null;default:true"`
	Views         int              `gorm:"not null;default:0"`
	SoldCount     int              `gorm:"not null;default:0"`
	CreatedAt     time.Time        `gorm:"index"`
	UpdatedAt     time.Time

	Seller   *UserModel     `gorm:"foreignKey:SellerID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
