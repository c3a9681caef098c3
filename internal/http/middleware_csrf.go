package httpx

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	csrfCookieName = "csrf_token"
	csrfHeaderName = "X-Csrf-Token"
	csrfTokenBytes = 32
	csrfCookieAge  = 12 * 60 * 60 // seconds
)

// CSRFConfig configures the double-submit cookie protection.
type CSRFConfig struct {
	// CookieDomain scopes the csrf_token cookie; empty means host-only.
	CookieDomain string
}

// CSRFProtection issues a csrf_token cookie readable by the browser app and
// requires every state-changing request (anything but GET, HEAD, OPTIONS,
// TRACE) to echo the cookie value in the X-Csrf-Token header. All mutating
// calls in this API are JSON fetches, so there is no form-field fallback.
func CSRFProtection(cfg CSRFConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := csrfCookieValue(r)
			if token == "" {
				fresh, err := newCSRFToken()
				if err != nil {
					WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
					return
				}
				token = fresh
				issueCSRFCookie(w, r, cfg.CookieDomain, token)
			}

			if mutatingMethod(r.Method) && !csrfHeaderMatches(r, token) {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "csrf_rejected",
					Err:     errors.New("missing or mismatched CSRF token"),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func mutatingMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	}
	return true
}

func csrfCookieValue(r *http.Request) string {
	cookie, err := r.Cookie(csrfCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// newCSRFToken generates a random token; it fails rather than fall back to a
// predictable value when the randomness source errors.
func newCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func issueCSRFCookie(w http.ResponseWriter, r *http.Request, domain, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		Domain:   domain,
		HttpOnly: false, // the browser app reads the cookie and echoes it in the header
		Secure:   r.TLS != nil || forwardedHTTPS(r),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   csrfCookieAge,
	})
}

// forwardedHTTPS reports whether any hop in X-Forwarded-Proto was HTTPS.
func forwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// csrfHeaderMatches compares the header token against the cookie token in
// constant time.
func csrfHeaderMatches(r *http.Request, cookieToken string) bool {
	header := r.Header.Get(csrfHeaderName)
	if cookieToken == "" || header == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(cookieToken)) == 1
}
