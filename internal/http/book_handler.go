package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bookcatalog/internal/book"
)

// BookHandler exposes the catalog operations over HTTP. Everything here is
// plumbing: decode, validate, call the service, serialize the envelope.
type BookHandler struct {
	svc *book.Service
	log *zap.Logger
}

func NewBookHandler(svc *book.Service, log *zap.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: log}
}

func (h *BookHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "book id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in book.CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := ValidateStruct(in); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	h.log.Info("create book", zap.String("title", in.Title), zap.String("author", in.Author))
	resp, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.serverError(w, "create book", err)
		return
	}
	writeEnvelope(w, resp)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.serverError(w, "get book", err)
		return
	}
	writeEnvelope(w, resp)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var in book.UpdateBookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := ValidateStruct(in); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, validationMessage(errs))
		return
	}

	h.log.Info("update book", zap.Int64("id", id), zap.String("title", in.Title))
	resp, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.serverError(w, "update book", err)
		return
	}
	writeEnvelope(w, resp)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	resp, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.serverError(w, "delete book", err)
		return
	}
	writeEnvelope(w, resp)
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Blank filter values mean "not applied", never a literal match on
	// whitespace.
	filter := book.Filter{
		Title:  strings.TrimSpace(query.Get("title")),
		Author: strings.TrimSpace(query.Get("author")),
	}

	pageNumber, _ := strconv.Atoi(query.Get("pageNumber"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	resp, err := h.svc.ListBooks(r.Context(), filter, book.Page{Number: pageNumber, Size: pageSize})
	if err != nil {
		h.serverError(w, "list books", err)
		return
	}
	writeEnvelope(w, resp)
}

const maxPageSize = 100

func (h *BookHandler) serverError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
