package httpx

import (
	"encoding/json"
	"net/http"

	"bookcatalog/internal/book"
)

// writeError emits the service's uniform envelope for failures raised by
// the middleware itself.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(book.Response{Code: code, Message: message})
}
