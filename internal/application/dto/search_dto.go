package dto

// SearchRequest parámetros de GET /api/search.
type SearchRequest struct {
	Query string `query:"q" validate:"required,min=1"`
}

// SearchResultDTO resultados de búsqueda global dentro de la empresa activa.
type SearchResultDTO struct {
	Query      string             `json:"query"`
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
	Customers  []CustomerResponse `json:"customers"`
}
