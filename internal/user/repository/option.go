package repository

// Filter contains filtering options for user queries.
type Filter struct {
	Department string
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
	Limit  int
}

// UpdateOptions contains options for updating a user.
// Only non-nil fields will be updated.
type UpdateOptions struct {
	ID         string
	FirstName  *string
	LastName   *string
	Department *string
	Company    *string
}
