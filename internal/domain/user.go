package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is an authenticated actor. Credentials live in a static list owned by
// the auth service; the persisted collection holds profiles only.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Review is customer feedback attached to a delivered order.
type Review struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Author    string    `json:"user"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

// Feedback is a free-form contact message.
type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"date"`
}
