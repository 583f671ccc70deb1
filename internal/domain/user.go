package domain

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is the identity record an authenticated principal resolves to.
type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Role           string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
