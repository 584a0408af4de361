package dto

import "time"

// CreateServiceRequest body para POST /api/services. El ticket se asocia a un
// cliente o a un lead abierto, nunca a ambos.
type CreateServiceRequest struct {
	CustomerID       string    `json:"customer_id" validate:"omitempty,uuid"`
	LeadID           string    `json:"lead_id" validate:"omitempty,uuid"`
	ProductID        string    `json:"product_id" validate:"omitempty,uuid"`
	ServiceType      string    `json:"service_type" validate:"required,max=100"`
	Description      string    `json:"description" validate:"omitempty,max=2000"`
	IssueDescription string    `json:"issue_description" validate:"omitempty,max=2000"`
	AssignedTo       string    `json:"assigned_to" validate:"omitempty,uuid"`
	ServiceDate      time.Time `json:"service_date" validate:"required"`
}

// UpdateServiceRequest body para PUT /api/services/:id.
type UpdateServiceRequest struct {
	CustomerID       string    `json:"customer_id" validate:"omitempty,uuid"`
	LeadID           string    `json:"lead_id" validate:"omitempty,uuid"`
	ProductID        string    `json:"product_id" validate:"omitempty,uuid"`
	ServiceType      string    `json:"service_type" validate:"required,max=100"`
	Description      string    `json:"description" validate:"omitempty,max=2000"`
	IssueDescription string    `json:"issue_description" validate:"omitempty,max=2000"`
	AssignedTo       string    `json:"assigned_to" validate:"omitempty,uuid"`
	ServiceDate      time.Time `json:"service_date" validate:"required"`
	Status           string    `json:"status" validate:"required,oneof=Pending Completed"`
}

// ServiceResponse ticket de servicio en respuestas.
type ServiceResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id,omitempty"`
	LeadID           string    `json:"lead_id,omitempty"`
	ProductID        string    `json:"product_id,omitempty"`
	ServiceType      string    `json:"service_type"`
	Description      string    `json:"description,omitempty"`
	IssueDescription string    `json:"issue_description,omitempty"`
	AssignedTo       string    `json:"assigned_to,omitempty"`
	ServiceDate      time.Time `json:"service_date"`
	Status           string    `json:"status"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}
