package entity

import "time"

// Service ticket de posventa. Referencia un Customer o un Lead abierto
// (se espera exactamente uno), opcionalmente un producto y un asignado.
type Service struct {
	ID               string
	CompanyID        string
	CustomerID       string // vacío si el ticket es de un lead
	LeadID           string // vacío si el ticket es de un cliente
	ProductID        string // opcional
	ServiceType      string
	Description      string
	IssueDescription string
	AssignedTo       string // miembro aprobado; opcional
	ServiceDate      time.Time
	Status           string // Pending, Completed
	CreatedBy        string
	CreatedAt        time.Time
}
