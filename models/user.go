package models

// Credentials are the administrator's login and plaintext password as sent
// to the login endpoint. They are never stored.
type Credentials struct {
	// Login is the administrator login.
	Login string `json:"login"`

	// Password is the plaintext password; compared against the configured
	// bcrypt hash.
	Password string `json:"password"`
}
