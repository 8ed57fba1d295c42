package models

import "time"

// StudentUser is an approved student account. Passwords are stored and
// compared in plaintext: the system has no real security model and the
// administrator views and rotates credentials directly.
type StudentUser struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Password           string    `json:"password"`
	Name               string    `json:"name"`
	ApprovedCourses    []string  `json:"approvedCourses"`
	ApprovedTestSeries []string  `json:"approvedTestSeries"`
	CreatedAt          time.Time `json:"createdAt"`
}

// HasCourse reports whether the course id is in the student's grant set.
func (s *StudentUser) HasCourse(id string) bool {
	for _, cid := range s.ApprovedCourses {
		if cid == id {
			return true
		}
	}
	return false
}

// HasTestSeries reports whether the series id is in the student's grant set.
func (s *StudentUser) HasTestSeries(id string) bool {
	for _, tid := range s.ApprovedTestSeries {
		if tid == id {
			return true
		}
	}
	return false
}

// StudentPatch carries partial updates for a student. Present fields
// override, absent fields are retained.
type StudentPatch struct {
	Email              *string   `json:"email,omitempty"`
	Password           *string   `json:"password,omitempty"`
	Name               *string   `json:"name,omitempty"`
	ApprovedCourses    *[]string `json:"approvedCourses,omitempty"`
	ApprovedTestSeries *[]string `json:"approvedTestSeries,omitempty"`
}

// Apply merges the patch into the student.
func (p StudentPatch) Apply(s *StudentUser) {
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Password != nil {
		s.Password = *p.Password
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ApprovedCourses != nil {
		s.ApprovedCourses = *p.ApprovedCourses
	}
	if p.ApprovedTestSeries != nil {
		s.ApprovedTestSeries = *p.ApprovedTestSeries
	}
}
