package domain

import "time"

// User is the account document. UserID is the identity provider's UID.
type User struct {
	UserID    string    `json:"userID" firestore:"userID"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Projects  []string  `json:"projects" firestore:"projects"`
	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// SignupRequest represents data needed to register a new account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
