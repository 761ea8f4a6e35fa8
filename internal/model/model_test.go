package model

import (
	"strings"
	"testing"
	"time"

	"cv-composer/internal/domain"
)

func validDoc() CVDocument {
	return CVDocument{
		Profile: ProfileView{FullName: "Ana Torres", Surnames: "Torres"},
		Sections: []SectionView{
			{Key: "courses", Title: "Courses", Entries: []Entry{{Title: "Go in Practice"}}},
		},
	}
}

func TestValidateDocumentAcceptsWellFormed(t *testing.T) {
	if err := ValidateDocument(validDoc()); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidateDocumentAcceptsBlankTitles(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Entries[0].Title = ""
	if err := ValidateDocument(doc); err != nil {
		t.Fatalf("blank stored values must still render, got %v", err)
	}
}

func TestValidateDocumentRejectsUnknownSection(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Key = "hobbies"
	err := ValidateDocument(doc)
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Fatalf("expected validation failure for unknown section key, got %v", err)
	}
}

func TestValidateDocumentAcceptsBlankSurname(t *testing.T) {
	doc := validDoc()
	doc.Profile.FullName = ""
	doc.Profile.Surnames = ""
	if err := ValidateDocument(doc); err != nil {
		t.Fatalf("blank surname must still render, got %v", err)
	}
}

func TestExperienceEntryOpenPeriod(t *testing.T) {
	e := domain.Experience{
		Position:  "Backend Developer",
		Company:   "Acme",
		Location:  "Quito",
		StartDate: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		Certificate: domain.Certificate{
			Link: "https://drive.example.com/cert",
		},
	}
	got := ExperienceEntry(e)
	if got.Period != "03/2021 - present" {
		t.Fatalf("period: %q", got.Period)
	}
	if got.Subtitle != "Acme, Quito" {
		t.Fatalf("subtitle: %q", got.Subtitle)
	}
	if got.Link != "https://drive.example.com/cert" || got.LinkLabel == "" {
		t.Fatalf("expected external certificate link, got %+v", got)
	}
}

func TestCourseEntryWithoutLinkHasNoLabel(t *testing.T) {
	c := domain.Course{
		Name:        "Kubernetes",
		StartDate:   time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2022, 2, 10, 0, 0, 0, 0, time.UTC),
		TotalHours:  40,
		Certificate: domain.Certificate{File: "certificates/k8s.pdf"},
	}
	got := CourseEntry(c)
	if got.Link != "" || got.LinkLabel != "" {
		t.Fatalf("uploaded files are not rendered as links: %+v", got)
	}
	if len(got.Details) == 0 || got.Details[0] != "40 hours" {
		t.Fatalf("details: %v", got.Details)
	}
}

func TestMarketplaceEntryPrice(t *testing.T) {
	got := MarketplaceEntry(domain.MarketplaceItem{Name: "Desk", Condition: "good", Price: 45.5})
	if got.Subtitle != "good · $45.50" {
		t.Fatalf("subtitle: %q", got.Subtitle)
	}
}
