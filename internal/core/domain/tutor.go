package domain

import "time"

// Tutor is a parent or legal guardian responsible for one or more children.
type Tutor struct {
	ID               string    `json:"tutor_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	IdentityDocument string    `json:"identity_document"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ChildTutor links a child with one of its tutors and records the
// relationship declared at registration time.
type ChildTutor struct {
	ChildID      string `json:"child_id"`
	TutorID      string `json:"tutor_id"`
	Relationship string `json:"relationship"`
}
