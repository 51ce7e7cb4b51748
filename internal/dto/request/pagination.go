package request

// PaginatedRequest carries list pagination parsed from query parameters.
type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
