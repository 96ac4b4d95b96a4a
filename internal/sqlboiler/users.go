package sqlboiler

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const TableNames_Users = "users"

// User is an object representing the database table.
type User struct {
	ID         string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	Email      string      `boil:"email" json:"email" toml:"email" yaml:"email"`
	FirstName  string      `boil:"first_name" json:"first_name" toml:"first_name" yaml:"first_name"`
	LastName   string      `boil:"last_name" json:"last_name" toml:"last_name" yaml:"last_name"`
	Department null.String `boil:"department" json:"department,omitempty" toml:"department" yaml:"department,omitempty"`
	Role       string      `boil:"role" json:"role" toml:"role" yaml:"role"`
	Company    null.String `boil:"company" json:"company,omitempty" toml:"company" yaml:"company,omitempty"`
	CreatedAt  time.Time   `boil:"created_at" json:"created_at" toml:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time   `boil:"updated_at" json:"updated_at" toml:"updated_at" yaml:"updated_at"`
}

var UserColumns = struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	Department string
	Role       string
	Company    string
	CreatedAt  string
	UpdatedAt  string
}{
	ID:         "id",
	Email:      "email",
	FirstName:  "first_name",
	LastName:   "last_name",
	Department: "department",
	Role:       "role",
	Company:    "company",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

var UserWhere = struct {
	ID         whereHelperstring
	Email      whereHelperstring
	Department whereHelpernull_String
}{
	ID:         whereHelperstring{field: "\"users\".\"id\""},
	Email:      whereHelperstring{field: "\"users\".\"email\""},
	Department: whereHelpernull_String{field: "\"users\".\"department\""},
}

func Users(mods ...qm.QueryMod) TableQuery[User] {
	return newTableQuery[User](TableNames_Users, mods)
}

func UpdateUser(ctx context.Context, exec boil.ContextExecutor, id string, cols M) (*User, error) {
	o := &User{}
	if err := updateReturning(ctx, exec, TableNames_Users, id, cols, o); err != nil {
		return nil, err
	}
	return o, nil
}
