package domain

// Section identifies one of the six optional CV sections.
type Section string

const (
	SectionExperience       Section = "experience"
	SectionCourses          Section = "courses"
	SectionRecognitions     Section = "recognitions"
	SectionAcademicProducts Section = "academic_products"
	SectionWorkProducts     Section = "work_products"
	SectionMarketplace      Section = "marketplace"
)

// AllSections lists the sections in document order.
var AllSections = []Section{
	SectionExperience,
	SectionCourses,
	SectionRecognitions,
	SectionAcademicProducts,
	SectionWorkProducts,
	SectionMarketplace,
}

var sectionTitles = map[Section]string{
	SectionExperience:       "Work Experience",
	SectionCourses:          "Courses",
	SectionRecognitions:     "Recognitions",
	SectionAcademicProducts: "Academic Products",
	SectionWorkProducts:     "Work Products",
	SectionMarketplace:      "Garage Sale",
}

// query parameter names used by the PDF export form
var sectionQueryKeys = map[Section]string{
	SectionExperience:       "exp",
	SectionCourses:          "cur",
	SectionRecognitions:     "rec",
	SectionAcademicProducts: "pa",
	SectionWorkProducts:     "pl",
	SectionMarketplace:      "gar",
}

func (s Section) Title() string { return sectionTitles[s] }

func (s Section) QueryKey() string { return sectionQueryKeys[s] }

func (s Section) Valid() bool {
	_, ok := sectionTitles[s]
	return ok
}

// HasCertificates reports whether records of this section are merged as
// appendices into the composite PDF.
func (s Section) HasCertificates() bool {
	return s == SectionCourses || s == SectionRecognitions
}
