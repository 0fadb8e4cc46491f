package domain

import "time"

// Country is a catalog entry used for the child's nationality.
type Country struct {
	ID   string `json:"country_id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// HealthCenter is a facility where vaccinations and appointments take place.
type HealthCenter struct {
	ID        string    `json:"center_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CountryID string    `json:"country_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Vaccine is a biological product from the national catalog.
type Vaccine struct {
	ID          string `json:"vaccine_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Doses       int    `json:"doses"`
}

// Lot is a physical batch of a vaccine with an expiry date and a running
// quantity that decreases as doses are applied.
type Lot struct {
	ID         string    `json:"lot_id"`
	VaccineID  string    `json:"vaccine_id"`
	LotNumber  string    `json:"lot_number"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Expired reports whether the lot is past its expiry date.
func (l Lot) Expired(at time.Time) bool {
	return at.After(l.ExpiryDate)
}

// SchemeEntry is one row of a national vaccination calendar: which dose of
// which vaccine is due at which age, for which country.
type SchemeEntry struct {
	ID         string `json:"scheme_id"`
	CountryID  string `json:"country_id"`
	VaccineID  string `json:"vaccine_id"`
	DoseNumber int    `json:"dose_number"`
	AgeMonths  int    `json:"age_months"`
}
