package models

// Credentials is the login and sign-up payload.
// It is consumed once per attempt and never persisted as is.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Empty reports whether either field is missing.
func (c Credentials) Empty() bool {
	return c.Username == "" || c.Password == ""
}
