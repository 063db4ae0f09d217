package model

// User is an account record owned by the registration subsystem.
// Password holds the SHA1 hex digest, never the plaintext.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// UserResponse is the externally visible shape of a User.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
