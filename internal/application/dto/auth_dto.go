package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en use case).
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyOption empresa disponible para seleccionar tras el login.
type CompanyOption struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
}

// LoginResponse salida de login. Con una sola empresa aprobada el token ya viene
// atado a ella; con varias, el token viene sin empresa y Companies trae las opciones.
type LoginResponse struct {
	Token     string          `json:"token"`
	User      UserResponse    `json:"user"`
	CompanyID string          `json:"company_id,omitempty"`
	Role      string          `json:"role,omitempty"`
	Companies []CompanyOption `json:"companies,omitempty"`
}

// SelectCompanyRequest entrada para elegir empresa activa.
type SelectCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}
