package domain

import (
	"time"
)

// Profile is the subject of the CV. Only one is rendered at a time.
type Profile struct {
	ID            int64      `json:"id"`
	Description   string     `json:"description"`
	Active        bool       `json:"active"`
	Surnames      string     `json:"surnames"`
	FirstNames    string     `json:"first_names"`
	Nationality   string     `json:"nationality"`
	BirthPlace    string     `json:"birth_place"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	NationalID    string     `json:"national_id"`
	Sex           string     `json:"sex"`
	MaritalStatus string     `json:"marital_status"`
	DriverLicense string     `json:"driver_license"`
	Phone         string     `json:"phone"`
	Landline      string     `json:"landline"`
	WorkAddress   string     `json:"work_address"`
	HomeAddress   string     `json:"home_address"`
	Website       string     `json:"website"`
	Email         string     `json:"email"`
	Photo         string     `json:"photo"`

	Switches SectionSwitches `json:"switches"`
}

func (p *Profile) FullName() string {
	if p.FirstNames == "" {
		return p.Surnames
	}
	if p.Surnames == "" {
		return p.FirstNames
	}
	return p.FirstNames + " " + p.Surnames
}

// SectionSwitches are the author-level flags gating each optional section
// on every surface.
type SectionSwitches struct {
	Experience       bool `json:"experience"`
	Courses          bool `json:"courses"`
	Recognitions     bool `json:"recognitions"`
	AcademicProducts bool `json:"academic_products"`
	WorkProducts     bool `json:"work_products"`
	Marketplace      bool `json:"marketplace"`
}

func (s SectionSwitches) Enabled(sec Section) bool {
	switch sec {
	case SectionExperience:
		return s.Experience
	case SectionCourses:
		return s.Courses
	case SectionRecognitions:
		return s.Recognitions
	case SectionAcademicProducts:
		return s.AcademicProducts
	case SectionWorkProducts:
		return s.WorkProducts
	case SectionMarketplace:
		return s.Marketplace
	}
	return false
}

// AllSwitchesOn is a convenience for fixtures and tests.
func AllSwitchesOn() SectionSwitches {
	return SectionSwitches{true, true, true, true, true, true}
}
