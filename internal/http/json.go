package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxJSONBody caps request bodies; every payload this API accepts is small.
const maxJSONBody = 1 << 20

// DecodeJSON decodes the request body into dst, rejecting unknown fields and
// oversized payloads. On failure the error response is already written and
// false is returned.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}
	return true
}

// WriteJSON marshals v and writes it with the given status code. Marshal
// failures turn into a plain 500; nothing is written until the whole body
// has been produced.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes the API error shape: a stable machine-readable code in
// "error" and a human-readable "message".
func WriteError(w http.ResponseWriter, p ErrorParams) {
	err := p.Err
	if err == nil {
		err = errors.New(http.StatusText(p.Code))
	}
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": err.Error()})
}
