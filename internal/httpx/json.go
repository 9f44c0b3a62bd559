// Package httpx holds small HTTP helpers shared by both parties:
// JSON encoding/decoding and request-logging middleware.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/voyagegate/internal/common"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body. Security-sensitive paths must pass
// a generic detail string here; the real cause belongs in logs only.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// DecodeJSON reads the request body into v. Failures are validation
// errors, a boundary concern rather than core logic.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
