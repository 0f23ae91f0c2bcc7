package model

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Icon        string `gorm:"type:varchar(50)"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
