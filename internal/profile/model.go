package profile

import "time"

// Profile is the applicant profile used to tailor generated documents. All
// fields are optional; absent fields render as "Not specified" at
// prompt-build time.
type Profile struct {
	UserID          string
	FullName        string
	JobTitle        string
	Skills          []string
	WorkExperience  string
	Education       string
	ContactEmail    string
	ContactPhone    string
	ContactLocation string
	UpdatedAt       time.Time
}
