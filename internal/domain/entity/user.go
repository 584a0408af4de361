package entity

import "time"

// User representa una cuenta de usuario. No pertenece a ninguna empresa por sí
// misma: el acceso a cada tenant lo dan sus Membership aprobadas.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
