package entity

import "time"

// Company representa una empresa/tenant del sistema. Toda entidad de negocio
// cuelga de una Company vía CompanyID; ninguna consulta cruza empresas.
type Company struct {
	ID        string
	Name      string // único en todo el sistema
	Address   string
	Phone     string
	Industry  string
	OwnerID   string // usuario fundador; primera membresía Admin
	CreatedAt time.Time
}
