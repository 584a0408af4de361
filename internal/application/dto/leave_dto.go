package dto

import "time"

// ApplyLeaveRequest body para POST /api/leaves.
type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason" validate:"omitempty,max=2000"`
}

// LeaveResponse solicitud de permiso en respuestas.
type LeaveResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LeaveType string    `json:"leave_type"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
