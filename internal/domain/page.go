package domain

// Default and maximum page sizes for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ListParams carries skip/limit values from the HTTP layer to the repo layer.
type ListParams struct {
	// Skip is the number of rows to skip (SQL OFFSET).
	Skip int
	// Limit is the maximum number of rows to return.
	Limit int
}

// NewListParams builds ListParams from optional HTTP query params.
// Nil or negative skip falls back to 0; nil or non-positive limit falls back
// to DefaultLimit. The limit is capped at MaxLimit.
func NewListParams(skip, limit *int) ListParams {
	p := ListParams{Skip: 0, Limit: DefaultLimit}
	if skip != nil && *skip > 0 {
		p.Skip = *skip
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxLimit)
	}
	return p
}
