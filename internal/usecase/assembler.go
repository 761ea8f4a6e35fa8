package usecase

import (
	"github.com/pkg/errors"
)

type pageKind int

const (
	pageBody pageKind = iota
	pageDivider
	pageAttachment
)

func (k pageKind) String() string {
	switch k {
	case pageBody:
		return "body"
	case pageDivider:
		return "divider"
	case pageAttachment:
		return "attachment"
	}
	return "unknown"
}

type pageSource struct {
	kind  pageKind
	label string
	data  []byte
}

// DocumentAssembler collects page sources in output order and merges them
// once. It is single-use and owned by one request.
type DocumentAssembler struct {
	merger PDFMerger
	parts  []pageSource
}

func NewDocumentAssembler(merger PDFMerger) *DocumentAssembler {
	return &DocumentAssembler{merger: merger}
}

func (a *DocumentAssembler) AddBody(data []byte) {
	a.parts = append(a.parts, pageSource{kind: pageBody, label: "body", data: data})
}

func (a *DocumentAssembler) AddDivider(title string, data []byte) {
	a.parts = append(a.parts, pageSource{kind: pageDivider, label: title, data: data})
}

func (a *DocumentAssembler) AddAttachment(label string, data []byte) {
	a.parts = append(a.parts, pageSource{kind: pageAttachment, label: label, data: data})
}

func (a *DocumentAssembler) Len() int { return len(a.parts) }

// Flush merges every part and releases them. With only a body there is
// nothing to merge and the body is returned as-is. When the combined merge
// fails, parts are folded onto the body one at a time and those that still
// fail are left out; their labels are returned as dropped.
func (a *DocumentAssembler) Flush() ([]byte, []string, error) {
	defer a.Release()
	if len(a.parts) == 0 {
		return nil, nil, errors.New("assembler has no pages")
	}
	if a.parts[0].kind != pageBody {
		return nil, nil, errors.New("assembler must start with the body")
	}
	if len(a.parts) == 1 {
		return a.parts[0].data, nil, nil
	}
	docs := make([][]byte, 0, len(a.parts))
	for _, p := range a.parts {
		docs = append(docs, p.data)
	}
	out, err := a.merger.Merge(docs)
	if err == nil {
		return out, nil, nil
	}
	return a.salvage()
}

func (a *DocumentAssembler) salvage() ([]byte, []string, error) {
	acc := a.parts[0].data
	var dropped []string
	for _, p := range a.parts[1:] {
		out, err := a.merger.Merge([][]byte{acc, p.data})
		if err != nil {
			dropped = append(dropped, p.kind.String()+" "+p.label)
			continue
		}
		acc = out
	}
	return acc, dropped, nil
}

// Body returns the body bytes, or nil once released.
func (a *DocumentAssembler) Body() []byte {
	for _, p := range a.parts {
		if p.kind == pageBody {
			return p.data
		}
	}
	return nil
}

func (a *DocumentAssembler) Release() {
	for i := range a.parts {
		a.parts[i].data = nil
	}
	a.parts = nil
}
