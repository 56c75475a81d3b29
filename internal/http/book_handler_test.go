package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookcatalog/internal/book"
)

func newTestHandler(t *testing.T) (*BookHandler, *book.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := book.NewMockRepository(ctrl)
	svc := book.NewService(mockRepo, book.UUIDGenerator{})
	return NewBookHandler(svc, zap.NewNop()), mockRepo
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const createJSON = `{
	"title": "First Stage",
	"author": "Yusuf",
	"publisher": "Coderbyte",
	"description": "Coding Assessment",
	"price": 10.00,
	"pages": 10,
	"publicationYear": 2023
}`

func TestBookHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *book.Book) error {
				b.ID = 1
				return nil
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(createJSON))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(http.StatusCreated), body["code"])
		assert.Equal(t, "Book created successfully", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(1), data["id"])
		assert.NotEmpty(t, data["isbn"])
		assert.Equal(t, "First Stage", data["title"])
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader("{not json"))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(`{"pages": 10}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["message"], "Title is required")
		assert.Contains(t, body["message"], "Author is required")
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/book",
			strings.NewReader(`{"title": "   ", "author": "Yusuf"}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(book.Book{ID: 1, Title: "First Stage", Author: "Yusuf", ISBN: "abc"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/1", nil)
		r.SetPathValue("id", "1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, "First Stage", data["title"])
		assert.NotContains(t, body, "message")
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(book.Book{}, book.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/99", nil)
		r.SetPathValue("id", "99")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Cannot find book with id 99", body["message"])
		assert.NotContains(t, body, "data")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/abc", nil)
		r.SetPathValue("id", "abc")

		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(book.Book{}, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book/1", nil)
		r.SetPathValue("id", "1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBookHandler_Update(t *testing.T) {
	updateJSON := `{"title": "Second Stage", "author": "Amina", "publicationYear": 2024}`

	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		existing := book.Book{ID: 1, Title: "First Stage", Author: "Yusuf", ISBN: "abc"}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(existing, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *book.Book) error {
				assert.Equal(t, "Second Stage", b.Title)
				assert.Equal(t, "abc", b.ISBN)
				assert.NotNil(t, b.UpdatedAt)
				return nil
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/book/1", strings.NewReader(updateJSON))
		r.SetPathValue("id", "1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Book updated successfully", body["message"])
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(book.Book{}, book.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/book/5", strings.NewReader(updateJSON))
		r.SetPathValue("id", "5")

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Cannot find book with id 5", body["message"])
	})

	t.Run("publication year below minimum", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/book/1",
			strings.NewReader(`{"title": "x", "author": "y", "publicationYear": 0}`))
		r.SetPathValue("id", "1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["message"], "PublicationYear")
	})
}

func TestBookHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(book.Book{ID: 1}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/book/1", nil)
		r.SetPathValue("id", "1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Book deleted successfully", body["message"])
		assert.NotContains(t, body, "data")
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(book.Book{}, book.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/book/2", nil)
		r.SetPathValue("id", "2")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_List(t *testing.T) {
	t.Run("passes filter and normalized page to the store", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), book.Filter{Title: "Go", Author: "Kennedy"}, book.Page{Number: 2, Size: 5}).
			Return([]book.Book{{ID: 6, Title: "Go in Action"}}, int64(11), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book?title=Go&author=Kennedy&pageNumber=2&pageSize=5", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(2), data["pageNumber"])
		assert.Equal(t, float64(5), data["pageSize"])
		assert.Equal(t, float64(11), data["totalCount"])
		assert.Equal(t, float64(3), data["totalPages"])
	})

	t.Run("whitespace-only filters are dropped", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), book.Filter{}, book.Page{Number: 1, Size: 10}).
			Return([]book.Book{{ID: 1, Title: "FirstStage"}}, int64(1), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book?title=%20%20%20&author=%09", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(1), data["totalCount"])
	})

	t.Run("defaults when no params supplied", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), book.Filter{}, book.Page{Number: 1, Size: 10}).
			Return(nil, int64(0), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(0), data["totalCount"])
		assert.Equal(t, float64(0), data["totalPages"])
		assert.NotNil(t, data["books"])
	})

	t.Run("repository failure", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, int64(0), context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/book", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
