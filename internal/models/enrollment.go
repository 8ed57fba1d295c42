package models

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment request.
// Transitions are one-way: Pending to Approved or Pending to Rejected.
type EnrollmentStatus string

const (
	EnrollmentStatusPending  EnrollmentStatus = "Pending"
	EnrollmentStatusApproved EnrollmentStatus = "Approved"
	EnrollmentStatusRejected EnrollmentStatus = "Rejected"
)

// Valid reports whether the status is one of the known values.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusApproved, EnrollmentStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status allows no further transition.
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentStatusApproved || s == EnrollmentStatusRejected
}

// EnrollmentRequest is a prospective student's application to a course or
// test series. CourseOrSeries is a title string, not an id: the join against
// the catalogs is textual and case-sensitive, so renaming a catalog entry
// orphans historical requests.
type EnrollmentRequest struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Message        string           `json:"message"`
	CourseOrSeries string           `json:"courseOrSeries"`
	Status         EnrollmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`

	// Populated only after approval.
	StudentID string `json:"studentId,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
}
