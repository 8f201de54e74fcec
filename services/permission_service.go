package services

import (
	"errors"

	"github.com/synchromes/esurat-sub001/models"

	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized: user not authenticated")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("resource not found")
)

type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// HasPermission - Cek apakah salah satu role user membawa permission bernama
// name. Satu query join user_roles -> role_permissions -> permissions.
func (ps *PermissionService) HasPermission(userID uint, name string) (bool, error) {
	var count int64
	err := ps.db.Model(&models.Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
		Where("user_roles.user_id = ? AND permissions.name = ?", userID, name).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PermissionsForUser - Snapshot seluruh nama permission user, dipanggil
// saat login untuk ditanam ke klaim token.
func (ps *PermissionService) PermissionsForUser(userID uint) ([]string, error) {
	var names []string
	err := ps.db.Model(&models.Permission{}).
		Distinct("permissions.name").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Joins("JOIN user_roles ON user_roles.role_id = role_permissions.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error

	if err != nil {
		return nil, err
	}
	return names, nil
}
