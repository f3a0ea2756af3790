package models

// Actor identifies the authenticated user a request acts as. Repositories use
// it to scope queries; handlers build it from token claims.
type Actor struct {
	UserID     int64
	Role       string
	HospitalID int64
}

// Scoped reports whether the actor only sees rows of their own hospital.
// Admins operate system-wide.
func (a Actor) Scoped() bool {
	return a.Role != RoleAdmin
}
