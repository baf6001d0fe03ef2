package pagination

// Info represents the pagination window derived from a total element count.
type Info struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int   `json:"pages"`
	Offset   int   `json:"offset"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

// CalculateOffset returns the element offset for the given page number.
// Pages below one are treated as the first page.
func CalculateOffset(page int, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// CalculatePages returns the number of pages needed to hold total elements.
// A page size of zero or less yields zero pages.
func CalculatePages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// NewInfo builds the complete pagination window for the given totals.
func NewInfo(total int64, page int, pageSize int) Info {
	pages := CalculatePages(total, pageSize)
	return Info{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Pages:    pages,
		Offset:   CalculateOffset(page, pageSize),
		HasNext:  page < pages,
		HasPrev:  page > 1,
	}
}
