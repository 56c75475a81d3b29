package book

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Response is the uniform envelope returned by every catalog operation.
// Message and Data are omitted from the wire when unset.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func notFoundResponse(id int64) Response {
	return Response{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Cannot find book with id %d", id),
	}
}

// Service orchestrates the catalog operations over a repository and an isbn
// generator. Collaborators are supplied explicitly, there is no ambient
// wiring.
type Service struct {
	repo Repository
	isbn ISBNGenerator
	now  func() time.Time
}

func NewService(repo Repository, isbn ISBNGenerator) *Service {
	return &Service{repo: repo, isbn: isbn, now: time.Now}
}

// Create stores a new book with a freshly generated isbn. Input validation
// happens upstream; by the time we are called the input is well-formed.
func (s *Service) Create(ctx context.Context, in CreateBookInput) (Response, error) {
	b := NewBook(in, s.isbn.Generate(), s.now())
	if err := s.repo.Insert(ctx, &b); err != nil {
		return Response{}, err
	}
	return Response{
		Code:    http.StatusCreated,
		Message: "Book created successfully",
		Data:    b.View(),
	}, nil
}

// Get fetches a single book by id.
func (s *Service) Get(ctx context.Context, id int64) (Response, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFoundResponse(id), nil
		}
		return Response{}, err
	}
	return Response{Code: http.StatusOK, Data: b.View()}, nil
}

// Update replaces every mutable field of an existing book. The id, isbn and
// creation timestamp survive the replacement.
func (s *Service) Update(ctx context.Context, id int64, in UpdateBookInput) (Response, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFoundResponse(id), nil
		}
		return Response{}, err
	}

	b.ApplyUpdate(in, s.now())
	if err := s.repo.Update(ctx, &b); err != nil {
		return Response{}, err
	}
	return Response{
		Code:    http.StatusOK,
		Message: "Book updated successfully",
		Data:    b.View(),
	}, nil
}

// Delete removes a book. Existence is checked first so that deleting an
// unknown id is a visible 404 rather than a silent no-op.
func (s *Service) Delete(ctx context.Context, id int64) (Response, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFoundResponse(id), nil
		}
		return Response{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return Response{}, err
	}
	return Response{
		Code:    http.StatusOK,
		Message: "Book deleted successfully",
	}, nil
}

// ListBooks returns one page of books matching the filter. An empty result
// set is a success; a page past the end comes back empty with the totals
// still describing the full matching set.
func (s *Service) ListBooks(ctx context.Context, f Filter, page Page) (Response, error) {
	page = page.Normalize()
	books, total, err := s.repo.List(ctx, f, page)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Code: http.StatusOK,
		Data: NewList(books, page, total),
	}, nil
}
