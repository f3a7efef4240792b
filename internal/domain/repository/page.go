package repository

// PageRequest describes 1-indexed page-based retrieval.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the metadata returned alongside every page of results.
type PageInfo struct {
	TotalDocs  int64
	TotalPages int
	Page       int
	Limit      int
}

// NewPageInfo computes page metadata for a total count. A request past the
// last page is legal and simply yields an empty item slice.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return PageInfo{
		TotalDocs:  total,
		TotalPages: totalPages,
		Page:       req.Page,
		Limit:      req.Limit,
	}
}
