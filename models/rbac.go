package models

import "time"

type Role struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Permission adalah satu hak akses bernama "modul.aksi",
// misalnya "letter.create" atau "disposition.set_number".
type Permission struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Module string `gorm:"type:varchar(50);index;not null" json:"module"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission dideklarasikan eksplisit (bukan hanya tag many2many)
// supaya join table bisa di-query langsung oleh PermissionService.
type RolePermission struct {
	RoleID       uint `gorm:"primaryKey" json:"role_id"`
	PermissionID uint `gorm:"primaryKey" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

type UserRole struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	RoleID uint `gorm:"primaryKey" json:"role_id"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
