package dto

// PageRequest pagination des listes, en numéro de page (frontend historique).
type PageRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// Defaults applique les valeurs par défaut et bornes.
func (p *PageRequest) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset dérive l'offset SQL de la page courante.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination métadonnées de page dans les réponses de liste.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination calcule les métadonnées à partir du total.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ListResponse enveloppe standard des listes paginées.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ErrorResponse corps d'erreur HTTP. Le dépôt historique mélangeait "detail"
// et "error" selon les handlers; tout est standardisé sur "detail".
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse corps de confirmation (suppressions notamment).
type MessageResponse struct {
	Message string `json:"message"`
}
