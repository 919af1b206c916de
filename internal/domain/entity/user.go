package entity

import "time"

// ProfileAdmin nombre reservado del perfil con acceso a todos los módulos.
const ProfileAdmin = "admin"

// User representa un usuario del back-office (pertenece a una Company y tiene un Profile).
type User struct {
	ID           string
	CompanyID    string
	ProfileID    string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estados de User.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)
