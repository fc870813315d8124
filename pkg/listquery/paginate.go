package listquery

// PageRef points a client at an adjacent page with the same limit.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Meta describes next/previous pages relative to the current window. A nil
// entry means no page exists in that direction.
type Meta struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Paginate computes pagination metadata for a window of the given total.
// The window itself is startIndex=(page-1)*limit, endIndex=page*limit; next
// exists iff records remain past endIndex, prev iff the window does not start
// at the first record.
func Paginate(page, limit int, total int64) Meta {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	start := (page - 1) * limit
	end := page * limit

	var meta Meta
	if int64(end) < total {
		meta.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if start > 0 {
		meta.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return meta
}
