package model

import (
	"time"

	"polaris-api/internal/sqlboiler"
)

// User is a dashboard account as shown on the settings page.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewUserFromDB(db *sqlboiler.User) User {
	return User{
		ID:         db.ID,
		Email:      db.Email,
		FirstName:  db.FirstName,
		LastName:   db.LastName,
		Department: db.Department.String,
		Role:       db.Role,
		Company:    db.Company.String,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}
}
