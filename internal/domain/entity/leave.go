package entity

import "time"

// Estados de una solicitud de permiso laboral.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// Leave solicitud de permiso de un miembro de la empresa.
type Leave struct {
	ID        string
	CompanyID string
	UserID    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string // Pending, Approved, Rejected
	CreatedAt time.Time
}
