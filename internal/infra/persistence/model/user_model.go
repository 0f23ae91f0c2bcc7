// Package model contains the GORM-specific structs mirroring the
// relational schema. Domain entities never carry persistence tags; these
// models do, and the repositories map between the two.
package model

import "time"

// UserModel mirrors the 'users' table. The primary key is the opaque
// subject id assigned by the external identity provider, so there is no
// database-side id generation here.
type UserModel struct {
	ID              string `gorm:"type:varchar(255);primaryKey"`
	Email           string `gorm:"type:varchar(255);uniqueIndex"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	ProfileImageURL string `gorm:"type:varchar(1024)"`
	Phone           string `gorm:"type:varchar(50)"`
	Address         string `gorm:"type:text"`
	City            string `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
