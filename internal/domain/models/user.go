package models

// User profile fields. The password hash lives only in the users table
// and in the login query; it is never attached to this struct.
type User struct {
	ID            int64  `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	CreatedAt     string `json:"created_at,omitempty"`
}
