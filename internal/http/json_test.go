package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","bogus":1}`))

	var dst struct {
		Name string `json:"name"`
	}
	ok := DecodeJSON(w, r, &dst)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}

func TestDecodeJSON_RejectsOversizedBody(t *testing.T) {
	w := httptest.NewRecorder()
	big := `{"name":"` + strings.Repeat("a", maxJSONBody+1) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	var dst struct {
		Name string `json:"name"`
	}
	ok := DecodeJSON(w, r, &dst)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWriteError_NilErrUsesStatusText(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
