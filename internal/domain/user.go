package domain

// User represents a customer record. A nil *User stands for "no user".
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
}
