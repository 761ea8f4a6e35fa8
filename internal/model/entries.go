package model

import (
	"fmt"
	"strconv"
	"time"

	"cv-composer/internal/domain"
)

const (
	dateLayout  = "02/01/2006"
	monthLayout = "01/2006"
)

func NewProfileView(p *domain.Profile) ProfileView {
	v := ProfileView{
		FullName:      p.FullName(),
		Surnames:      p.Surnames,
		FirstNames:    p.FirstNames,
		Description:   p.Description,
		Nationality:   p.Nationality,
		BirthPlace:    p.BirthPlace,
		NationalID:    p.NationalID,
		MaritalStatus: p.MaritalStatus,
		DriverLicense: p.DriverLicense,
		Phone:         p.Phone,
		Landline:      p.Landline,
		WorkAddress:   p.WorkAddress,
		HomeAddress:   p.HomeAddress,
		Website:       p.Website,
		Email:         p.Email,
		Photo:         p.Photo,
	}
	if p.BirthDate != nil {
		v.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return v
}

func period(from time.Time, to *time.Time) string {
	if to == nil {
		return from.Format(monthLayout) + " - present"
	}
	return from.Format(monthLayout) + " - " + to.Format(monthLayout)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

func certificateLink(c domain.Certificate) (string, string) {
	if c.Link != "" {
		return c.Link, "View certificate"
	}
	return "", ""
}

func ExperienceEntry(e domain.Experience) Entry {
	link, label := certificateLink(e.Certificate)
	details := []string{}
	if e.ContactName != "" {
		details = append(details, "Reference: "+joinNonEmpty(", ", e.ContactName, e.ContactPhone))
	}
	if c := joinNonEmpty(" · ", e.CompanyEmail, e.CompanyWebsite); c != "" {
		details = append(details, c)
	}
	return Entry{
		Title:       e.Position,
		Subtitle:    joinNonEmpty(", ", e.Company, e.Location),
		Period:      period(e.StartDate, e.EndDate),
		Description: e.Duties,
		Details:     details,
		Link:        link,
		LinkLabel:   label,
	}
}

func CourseEntry(c domain.Course) Entry {
	link, label := certificateLink(c.Certificate)
	end := c.EndDate
	details := []string{}
	if c.TotalHours > 0 {
		details = append(details, strconv.Itoa(c.TotalHours)+" hours")
	}
	if c.ContactName != "" {
		details = append(details, "Contact: "+joinNonEmpty(", ", c.ContactName, c.ContactPhone, c.SponsorEmail))
	}
	return Entry{
		Title:       c.Name,
		Subtitle:    c.Sponsor,
		Period:      period(c.StartDate, &end),
		Description: c.Description,
		Details:     details,
		Link:        link,
		LinkLabel:   label,
	}
}

func RecognitionEntry(r domain.Recognition) Entry {
	link, label := certificateLink(r.Certificate)
	title := r.Description
	if title == "" {
		title = r.Kind
	}
	details := []string{}
	if r.ContactName != "" {
		details = append(details, "Contact: "+joinNonEmpty(", ", r.ContactName, r.ContactPhone))
	}
	return Entry{
		Title:     title,
		Subtitle:  joinNonEmpty(" · ", r.Kind, r.Sponsor),
		Period:    r.Date.Format(dateLayout),
		Details:   details,
		Link:      link,
		LinkLabel: label,
	}
}

func AcademicProductEntry(a domain.AcademicProduct) Entry {
	return Entry{
		Title:       a.Name,
		Subtitle:    a.Classifier,
		Description: a.Description,
	}
}

func WorkProductEntry(w domain.WorkProduct) Entry {
	return Entry{
		Title:       w.Name,
		Period:      w.Date.Format(dateLayout),
		Description: w.Description,
	}
}

func MarketplaceEntry(m domain.MarketplaceItem) Entry {
	return Entry{
		Title:       m.Name,
		Subtitle:    joinNonEmpty(" · ", m.Condition, fmt.Sprintf("$%.2f", m.Price)),
		Period:      m.PublishedAt.Format(dateLayout),
		Description: m.Description,
		Image:       m.Photo,
	}
}
