//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "encoding/json"

// Envelope is the standard response wrapper used by the attendance service:
// {"status": 200, "message": "Success", "data": ...}.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the envelope payload into out. A null or absent
// payload leaves out untouched.
func (e Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// Page is the Spring-style pagination wrapper returned by list endpoints.
// The front end only ever reads Content and TotalPages, but the remaining
// counters come along for free and are useful in view models.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}
