package domain

// User is an authenticated caller identity. The backend trusts it for
// attribution fields and performs no authentication beyond token checks.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// StoredUser is a user record in the mock directory, including the stored
// password. Plaintext comparison only; this is demonstration data.
type StoredUser struct {
	User
	Password string `json:"-"`
}
