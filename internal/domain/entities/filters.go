package entities

// SortOrder selects between the admin and public default orderings.
type SortOrder int

const (
	SortAdmin SortOrder = iota
	SortPublic
)

type EventFilter struct {
	Search   string
	Category string
	Status   string
	Sort     SortOrder
}

type MemberFilter struct {
	Search     string
	Department string
	Year       string
}

type ProjectFilter struct {
	Search   string
	Category string
}

// DashboardStats summarises collection sizes for the admin overview.
type DashboardStats struct {
	Events                int64 `json:"events"`
	Members               int64 `json:"members"`
	Projects              int64 `json:"projects"`
	ContactSubmissions    int64 `json:"contactSubmissions"`
	NewContactSubmissions int64 `json:"newContactSubmissions"`
}
