package http

import (
	"encoding/json"
	"net/http"

	"bookcatalog/internal/book"
)

// writeEnvelope serializes a catalog response, mirroring its code as the
// transport status. Unset message/data fields are omitted, not null.
func writeEnvelope(w http.ResponseWriter, resp book.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, book.Response{Code: code, Message: message})
}
