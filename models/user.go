package models

import "time"

type UserRole string

const RoleAdmin UserRole = "admin"

// Admin - учётная запись оператора, которому разрешён ввод результатов.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal - явный контекст авторизации, передаваемый от middleware в сервисы.
type Principal struct {
	AdminID string
	Email   string
	Role    UserRole
}

func (p Principal) IsAdmin() bool {
	return p.AdminID != "" && p.Role == RoleAdmin
}
