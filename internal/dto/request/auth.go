package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Accepted for wire compatibility, but the server always assigns
	// the least-privileged role. Privileged accounts come from seeding,
	// so the value is never validated, just discarded.
	Role string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
