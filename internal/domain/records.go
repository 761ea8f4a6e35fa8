package domain

import "time"

// Certificate points at a supporting document. File is an uploaded path in
// the media namespace (fetchable); Link is an external page and is never
// merged. Both may be set.
type Certificate struct {
	File string `json:"file,omitempty"`
	Link string `json:"link,omitempty"`
}

func (c Certificate) Fetchable() bool { return c.File != "" }

type Experience struct {
	ID             int64      `json:"id"`
	ProfileID      int64      `json:"profile_id"`
	Position       string     `json:"position"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	CompanyEmail   string     `json:"company_email"`
	CompanyWebsite string     `json:"company_website"`
	ContactName    string     `json:"contact_name"`
	ContactPhone   string     `json:"contact_phone"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Duties         string     `json:"duties"`
	Published      bool       `json:"published"`

	Certificate Certificate `json:"certificate"`
}

type Course struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalHours   int       `json:"total_hours"`
	Description  string    `json:"description"`
	Sponsor      string    `json:"sponsor"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	SponsorEmail string    `json:"sponsor_email"`
	Published    bool      `json:"published"`

	Certificate Certificate `json:"certificate"`
}

type Recognition struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	Kind         string    `json:"kind"` // academic, public or private
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Sponsor      string    `json:"sponsor"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	Published    bool      `json:"published"`

	Certificate Certificate `json:"certificate"`
}

type AcademicProduct struct {
	ID          int64  `json:"id"`
	ProfileID   int64  `json:"profile_id"`
	Name        string `json:"name"`
	Classifier  string `json:"classifier"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

type WorkProduct struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
}

type MarketplaceItem struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Name        string    `json:"name"`
	Condition   string    `json:"condition"` // good or fair
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Photo       string    `json:"photo,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Published   bool      `json:"published"`
}

// UnifiedReport is a pre-merged certificate bundle linked from the course
// and recognition pages.
type UnifiedReport struct {
	Section   Section   `json:"section"`
	File      string    `json:"file"`
	UpdatedAt time.Time `json:"updated_at"`
}
