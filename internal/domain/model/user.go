//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// User is the account record returned by the attendance service on login.
// The password field is never populated by the server; it is omitted here.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	PayedDate   string `json:"payedDate,omitempty"`
}

// LoginRequest is the credential payload sent to POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of POST /auth/login.
type LoginResponse struct {
	Token   string `json:"token"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Balance is the student's payment state. Limit is the date the account is
// paid through, serialized as yyyy-mm-dd.
type Balance struct {
	Limit string `json:"limit"`
}
