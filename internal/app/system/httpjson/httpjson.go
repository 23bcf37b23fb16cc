// Package httpjson holds the JSON request/response helpers shared by all
// API handlers. Error bodies use the {"detail": "..."} shape the public
// clients already consume.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorBody is the wire shape for every non-2xx response.
type errorBody struct {
	Detail string `json:"detail"`
}

// Respond writes v as JSON with the given status. A nil v writes only the
// status and headers.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"detail": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorBody{Detail: message})
}

// Decode reads the request body into dst. Unknown fields are ignored;
// clients may send extra keys without being rejected.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return nil
}
