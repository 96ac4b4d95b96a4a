package user

import "polaris-api/internal/model"

type Filter struct {
	Department string
	Limit      int
}

type ListInput struct {
	Filter Filter
}

// UpdateProfileInput patches the caller's own profile. Nil fields are left
// alone. Email and role are not self-service.
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Department *string
	Company    *string
}

func (ip UpdateProfileInput) IsEmpty() bool {
	return ip.FirstName == nil && ip.LastName == nil && ip.Department == nil && ip.Company == nil
}

type UserOutput struct {
	User model.User
}
