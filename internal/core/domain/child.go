package domain

import "time"

// Gender as recorded on the birth document.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Child is a minor enrolled in the immunization program.
type Child struct {
	ID               string    `json:"child_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	IdentityDocument string    `json:"identity_document"`
	BirthDate        time.Time `json:"birth_date"`
	Gender           Gender    `json:"gender"`
	CountryID        string    `json:"country_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// AgeInMonths reports the child's age in whole months at the given date.
// Scheme entries are expressed in months, so dose eligibility checks use
// this rather than calendar years.
func (c Child) AgeInMonths(at time.Time) int {
	if at.Before(c.BirthDate) {
		return 0
	}
	years := at.Year() - c.BirthDate.Year()
	months := int(at.Month()) - int(c.BirthDate.Month())
	total := years*12 + months
	if at.Day() < c.BirthDate.Day() {
		total--
	}
	if total < 0 {
		return 0
	}
	return total
}
