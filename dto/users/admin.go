package users

import (
	"net/mail"
	"strings"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleIDs  []uint `json:"role_ids"`
	IsActive *bool  `json:"is_active"`
}

func (r *CreateUserRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "email format is invalid"
	}

	if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}

	return errors
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleIDs  *[]uint `json:"role_ids"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*r.Email)); err != nil {
			errors["email"] = "email format is invalid"
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}

	return errors
}

type RoleRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	PermissionIDs []uint `json:"permission_ids"`
}

func (r *RoleRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}

	return errors
}
