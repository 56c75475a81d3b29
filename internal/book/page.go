package book

const (
	// DefaultPageNumber is the first page, pages are 1-based.
	DefaultPageNumber = 1
	// DefaultPageSize is used when the caller does not ask for a size.
	DefaultPageSize = 10
)

// Page is a 1-based pagination request.
type Page struct {
	Number int
	Size   int
}

// Normalize returns the page with defaults applied for out-of-range values.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPageNumber
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset converts the 1-based page number into the store's zero-based
// row offset.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages computes how many pages of the given size cover total rows.
// Zero rows means zero pages.
func TotalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
