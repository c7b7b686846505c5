package models

import (
	"strconv"
	"time"
)

// Patient is the clinic's patient document, used only to fill in display values
// on visit records that do not carry them.
type Patient struct {
	ID         string     `json:"id"`
	HospitalID string     `json:"hospitalId"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	Age        string     `json:"age,omitempty"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
}

// AgeAt returns the stored age, or the age computed from the birth date at now.
func (p Patient) AgeAt(now time.Time) string {
	if p.Age != "" {
		return p.Age
	}
	if p.BirthDate == nil || p.BirthDate.IsZero() {
		return ""
	}
	b := p.BirthDate.In(now.Location())
	years := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return ""
	}
	return strconv.Itoa(years)
}
