package dto

import "time"

// CreateLeadRequest body para POST /api/leads.
type CreateLeadRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty,max=300"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateLeadRequest body para PUT /api/leads/:id. El cambio de estado a
// "Converted" dispara la creación del cliente.
type UpdateLeadRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty,max=300"`
	Status     string `json:"status" validate:"required,oneof=New Contacted Converted NotConverted"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid"`
}

// LeadResponse lead en respuestas.
type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
