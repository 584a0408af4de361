package entity

import "time"

// Customer registro de contacto de la empresa. Se crea directamente o como
// efecto de convertir un Lead (deduplicado por email dentro del tenant).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedBy string
	CreatedAt time.Time
}
