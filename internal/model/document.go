package model

// View models consumed by the HTML templates and validated against
// templates/cv.schema.json before rendering.

type ProfileView struct {
	FullName      string `json:"full_name"`
	Surnames      string `json:"surnames"`
	FirstNames    string `json:"first_names,omitempty"`
	Description   string `json:"description,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	BirthPlace    string `json:"birth_place,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	NationalID    string `json:"national_id,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	DriverLicense string `json:"driver_license,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Landline      string `json:"landline,omitempty"`
	WorkAddress   string `json:"work_address,omitempty"`
	HomeAddress   string `json:"home_address,omitempty"`
	Website       string `json:"website,omitempty"`
	Email         string `json:"email,omitempty"`
	Photo         string `json:"photo,omitempty"`
}

type Entry struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
	Link        string   `json:"link,omitempty"`
	LinkLabel   string   `json:"link_label,omitempty"`
	Image       string   `json:"image,omitempty"`
}

type SectionView struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

type CVDocument struct {
	Profile  ProfileView   `json:"profile"`
	Sections []SectionView `json:"sections"`
}
