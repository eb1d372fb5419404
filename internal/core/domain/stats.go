package domain

import "fmt"

// ActiveCounts is the raw payload of the backend's active/inactive endpoint.
type ActiveCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Total    int `json:"total,omitempty"`
}

// RoleCount is one entry of the backend's role-distribution endpoint.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// MonthlyRegistration is one entry of the backend's registration endpoint,
// with year and month as separate numbers.
type MonthlyRegistration struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// MonthKey renders the "YYYY-MM" form used by the dashboard, month
// zero-padded to two digits.
func (m MonthlyRegistration) MonthKey() string {
	return fmt.Sprintf("%d-%02d", m.Year, m.Month)
}

// MonthlyCount is the dashboard-facing registration entry.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// RoleDistribution carries counts for the three fixed role names only.
type RoleDistribution struct {
	Admin int `json:"Admin"`
	User  int `json:"User"`
	Guest int `json:"Guest"`
}

// UserStats is the combined dashboard statistics shape. It is derived, never
// persisted: the aggregation lives entirely in the client SDK.
type UserStats struct {
	Active               int              `json:"active"`
	Inactive             int              `json:"inactive"`
	RoleDistribution     RoleDistribution `json:"roleDistribution"`
	MonthlyRegistrations []MonthlyCount   `json:"monthlyRegistrations"`
}

// EmptyUserStats is the fail-soft fallback: all counts zero, registrations
// present but empty, so callers always get a renderable shape.
func EmptyUserStats() UserStats {
	return UserStats{MonthlyRegistrations: []MonthlyCount{}}
}
