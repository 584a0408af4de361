package entity

import "time"

// Estados de un Lead.
const (
	LeadNew          = "New"
	LeadContacted    = "Contacted"
	LeadConverted    = "Converted"
	LeadNotConverted = "NotConverted"
)

// Lead prospecto de venta. La transición a Converted materializa a lo sumo un
// Customer con el mismo email dentro de la empresa; no hay transición inversa.
type Lead struct {
	ID         string
	CompanyID  string
	Name       string
	Email      string
	Phone      string
	Address    string
	Status     string // New, Contacted, Converted, NotConverted
	AssignedTo string // miembro aprobado de la empresa; vacío = sin asignar
	CreatedBy  string
	CreatedAt  time.Time
}

// ValidLeadStatus informa si s es un estado de lead conocido.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadNew, LeadContacted, LeadConverted, LeadNotConverted:
		return true
	}
	return false
}

// Open informa si el lead sigue activo (puede recibir servicios o convertirse).
func (l *Lead) Open() bool {
	return l.Status == LeadNew || l.Status == LeadContacted
}
