package book

import "time"

// CreateBookInput carries the caller-supplied fields for a new book.
// The id and isbn are server-assigned and have no place here.
type CreateBookInput struct {
	Title           string   `json:"title" validate:"required,notblank"`
	Author          string   `json:"author" validate:"required,notblank"`
	Publisher       string   `json:"publisher"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	Pages           int      `json:"pages"`
	PublicationYear int      `json:"publicationYear"`
}

// UpdateBookInput is a full replacement of a book's mutable fields. There is
// no partial-merge semantics: every field overwrites the stored value, zero
// values included, so the caller must send the complete record.
type UpdateBookInput struct {
	Title           string   `json:"title" validate:"required,notblank"`
	Author          string   `json:"author" validate:"required,notblank"`
	Publisher       string   `json:"publisher"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	Pages           int      `json:"pages"`
	PublicationYear int      `json:"publicationYear" validate:"gte=1"`
}

// View is the externally visible shape of a book. Timestamps are not exposed.
type View struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Publisher       string   `json:"publisher,omitempty"`
	PublicationYear int      `json:"publicationYear"`
	ISBN            string   `json:"isbn"`
	Price           *float64 `json:"price,omitempty"`
	Pages           int      `json:"pages"`
	Description     string   `json:"description,omitempty"`
}

// List is one page of views plus the pagination metadata for the full
// matching set.
type List struct {
	Books      []View `json:"books"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	TotalCount int64  `json:"totalCount"`
	TotalPages int    `json:"totalPages"`
}

// NewBook projects a create input into a fresh entity. The store assigns the
// id; UpdatedAt stays nil until the first replacement.
func NewBook(in CreateBookInput, isbn string, now time.Time) Book {
	return Book{
		Title:           in.Title,
		Author:          in.Author,
		Publisher:       in.Publisher,
		PublicationYear: in.PublicationYear,
		ISBN:            isbn,
		Price:           in.Price,
		Pages:           in.Pages,
		Description:     in.Description,
		CreatedAt:       now,
	}
}

// ApplyUpdate replaces every mutable field from the input. ID, ISBN and
// CreatedAt are preserved; the update timestamp is refreshed.
func (b *Book) ApplyUpdate(in UpdateBookInput, now time.Time) {
	b.Title = in.Title
	b.Author = in.Author
	b.Publisher = in.Publisher
	b.Description = in.Description
	b.Pages = in.Pages
	b.Price = in.Price
	b.PublicationYear = in.PublicationYear
	b.UpdatedAt = &now
}

// View projects the entity into its external shape.
func (b Book) View() View {
	return View{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		Price:           b.Price,
		Pages:           b.Pages,
		Description:     b.Description,
	}
}

// NewList builds one page of views from entities and the unclamped totals.
func NewList(books []Book, page Page, total int64) List {
	views := make([]View, 0, len(books))
	for _, b := range books {
		views = append(views, b.View())
	}
	return List{
		Books:      views,
		PageNumber: page.Number,
		PageSize:   page.Size,
		TotalCount: total,
		TotalPages: TotalPages(total, page.Size),
	}
}
