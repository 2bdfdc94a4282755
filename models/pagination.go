package models

// Paginated is the list-response envelope every collection endpoint returns.
type Paginated struct {
	Data       interface{} `json:"data"`
	TotalCount int64       `json:"totalCount"`
}

func NewPaginated(data interface{}, totalCount int64) Paginated {
	return Paginated{
		Data:       data,
		TotalCount: totalCount,
	}
}
