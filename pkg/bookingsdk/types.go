package bookingsdk

import "time"

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is a human-readable message. Authentication failures always
	// carry the same message regardless of cause.
	Error string `json:"error"`
}

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Phone is optional. When present it must be E.164-formatted.
	Phone string `json:"phone,omitempty"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapRequest is the body of POST /v1/bootstrap. It mints the first
// admin identity and only works while the credential store is empty.
type BootstrapRequest struct {
	// Token must match the server's bootstrap token when one is configured.
	Token string `json:"token,omitempty"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// IdentityResponse describes a registered identity. The password verifier is
// never included.
type IdentityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by POST /v1/auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// SlotsResponse lists the free slot starts of one calendar day, ascending.
type SlotsResponse struct {
	// Date is the queried day, formatted YYYY-MM-DD.
	Date string `json:"date"`

	// Slots holds RFC 3339 slot start times with no overlapping booking.
	Slots []time.Time `json:"slots"`
}

// BookRequest is the body of POST /v1/appointments.
type BookRequest struct {
	ServiceID int64 `json:"service_id"`

	// StartAt is the desired slot start, RFC 3339.
	StartAt time.Time `json:"start_at"`
}

// AppointmentResponse describes one reservation.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	ServiceID   int64     `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AppointmentListResponse wraps a list of reservations.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// HealthChecks reports the state of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
