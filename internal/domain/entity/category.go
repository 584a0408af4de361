package entity

import "time"

// Category agrupación de productos, con nombre único por empresa.
type Category struct {
	ID        string
	CompanyID string
	Name      string
	ImageURL  string
	CreatedAt time.Time
}
