package payload

// Paged list requests and responses shared by the handlers.
type (
	// ListReqQuery is bound from the query string. Both fields are optional; a missing
	// one returns every row.
	ListReqQuery struct {
		PageIndex *int `form:"page_index" binding:"omitempty,min=0"`
		PageSize  *int `form:"page_size" binding:"omitempty,min=1,max=500"`
	}
	ListResp[T any] struct {
		Rows  []T   `json:"rows"`
		Count int64 `json:"count"`
	}
)

// IDUri binds the :id path segment.
type IDUri struct {
	ID string `uri:"id" binding:"required"`
}
