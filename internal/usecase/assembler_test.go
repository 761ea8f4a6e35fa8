package usecase

import (
	"bytes"
	"testing"
)

func TestAssemblerEmptyFlushFails(t *testing.T) {
	if _, _, err := NewDocumentAssembler(&fakePDF{}).Flush(); err == nil {
		t.Fatalf("expected error for empty assembler")
	}
}

func TestAssemblerRequiresBodyFirst(t *testing.T) {
	a := NewDocumentAssembler(&fakePDF{})
	a.AddDivider("Courses", pdfOf("divider"))
	a.AddBody(pdfOf("body"))
	if _, _, err := a.Flush(); err == nil {
		t.Fatalf("expected error when body is not first")
	}
}

func TestAssemblerBodyOnlySkipsMerge(t *testing.T) {
	pdf := &fakePDF{}
	a := NewDocumentAssembler(pdf)
	a.AddBody(pdfOf("body"))
	out, dropped, err := a.Flush()
	if err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !bytes.Equal(out, pdfOf("body")) || pdf.merged != nil || dropped != nil {
		t.Fatalf("body should pass through unmerged")
	}
}

func TestAssemblerMergesInInsertionOrderAndReleases(t *testing.T) {
	pdf := &fakePDF{}
	a := NewDocumentAssembler(pdf)
	a.AddBody(pdfOf("body"))
	a.AddDivider("Courses", pdfOf("divider"))
	a.AddAttachment("courses#1", pdfOf("cert"))
	if a.Len() != 3 {
		t.Fatalf("len %d", a.Len())
	}
	out, dropped, err := a.Flush()
	if err != nil || dropped != nil {
		t.Fatalf("flush: %v %v", err, dropped)
	}
	want := bytes.Join([][]byte{pdfOf("body"), pdfOf("divider"), pdfOf("cert")}, partSep)
	if !bytes.Equal(out, want) {
		t.Fatalf("unexpected merge output %q", out)
	}
	if a.Len() != 0 || a.Body() != nil {
		t.Fatalf("assembler should be released after flush")
	}
}

func TestAssemblerLeavesOutOnlyTheUnmergeablePart(t *testing.T) {
	pdf := &fakePDF{reject: pdfOf("broken")}
	a := NewDocumentAssembler(pdf)
	a.AddBody(pdfOf("body"))
	a.AddDivider("Courses", pdfOf("divider"))
	a.AddAttachment("courses#1", pdfOf("broken"))
	a.AddAttachment("courses#2", pdfOf("cert"))
	out, dropped, err := a.Flush()
	if err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := bytes.Join([][]byte{pdfOf("body"), pdfOf("divider"), pdfOf("cert")}, partSep)
	if !bytes.Equal(out, want) {
		t.Fatalf("unexpected merge output %q", out)
	}
	if len(dropped) != 1 || dropped[0] != "attachment courses#1" {
		t.Fatalf("dropped %v", dropped)
	}
}
