package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre también el acceso a recursos de otra empresa: un recurso
// ajeno al tenant se reporta igual que uno inexistente para no filtrar su existencia.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoCompanyAccess    = errors.New("sin acceso a ninguna empresa")
	ErrPriceBelowMinimum  = errors.New("precio de venta por debajo del mínimo")
	ErrEmptyOrder         = errors.New("la orden debe tener al menos un producto")
)
