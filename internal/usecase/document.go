package usecase

import (
	"cv-composer/internal/domain"
	"cv-composer/internal/model"
)

// BuildDocument turns a resolved selection into template data. Included
// sections without records are left out.
func BuildDocument(sel *Selection) model.CVDocument {
	doc := model.CVDocument{
		Profile:  model.NewProfileView(sel.Profile),
		Sections: []model.SectionView{},
	}
	for _, s := range domain.AllSections {
		if !sel.IsIncluded(s) {
			continue
		}
		entries := SectionEntries(sel, s)
		if len(entries) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, model.SectionView{
			Key:     string(s),
			Title:   s.Title(),
			Entries: entries,
		})
	}
	return doc
}

func SectionEntries(sel *Selection, s domain.Section) []model.Entry {
	out := []model.Entry{}
	switch s {
	case domain.SectionExperience:
		for _, e := range sel.Experiences {
			out = append(out, model.ExperienceEntry(e))
		}
	case domain.SectionCourses:
		for _, c := range sel.Courses {
			out = append(out, model.CourseEntry(c))
		}
	case domain.SectionRecognitions:
		for _, r := range sel.Recognitions {
			out = append(out, model.RecognitionEntry(r))
		}
	case domain.SectionAcademicProducts:
		for _, a := range sel.AcademicProducts {
			out = append(out, model.AcademicProductEntry(a))
		}
	case domain.SectionWorkProducts:
		for _, w := range sel.WorkProducts {
			out = append(out, model.WorkProductEntry(w))
		}
	case domain.SectionMarketplace:
		for _, m := range sel.MarketplaceItems {
			out = append(out, model.MarketplaceEntry(m))
		}
	}
	return out
}
