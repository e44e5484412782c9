package domain

// User is the authenticated session user. Its lifecycle is owned by the
// identity provider; this is the read-only handle passed to services.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
