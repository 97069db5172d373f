// internals/features/curriculum/catalog/model/user_model.go
package model

import "time"

// UserModel mirrors the identity service's user record. Accounts are managed
// there; this table is only read for planner ownership and export headers.
type UserModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"column:code;type:varchar(20);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Role      string    `gorm:"column:role;type:varchar(30);not null;default:docente" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }
