package infrastructure

import (
	"bytes"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

var disableConfigDirOnce sync.Once

// PDFCPUMerger parses and concatenates PDF documents with pdfcpu. It keeps
// no state between calls.
type PDFCPUMerger struct{}

func NewPDFCPUMerger() *PDFCPUMerger {
	// pdfcpu would otherwise create a config dir under the user's home
	disableConfigDirOnce.Do(api.DisableConfigDir)
	return &PDFCPUMerger{}
}

func (m *PDFCPUMerger) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount parses doc fully and reports its page count. It doubles as
// the parse check for downloaded certificates.
func (m *PDFCPUMerger) PageCount(doc []byte) (int, error) {
	if len(doc) == 0 {
		return 0, errors.New("empty document")
	}
	n, err := api.PageCount(bytes.NewReader(doc), m.conf())
	if err != nil {
		return 0, errors.Wrap(err, "parse pdf")
	}
	if n == 0 {
		return 0, errors.New("pdf has no pages")
	}
	return n, nil
}

// Merge concatenates docs page by page in the given order.
func (m *PDFCPUMerger) Merge(docs [][]byte) ([]byte, error) {
	switch len(docs) {
	case 0:
		return nil, errors.New("nothing to merge")
	case 1:
		return docs[0], nil
	}
	rsc := make([]io.ReadSeeker, 0, len(docs))
	for _, d := range docs {
		rsc = append(rsc, bytes.NewReader(d))
	}
	var out bytes.Buffer
	if err := api.MergeRaw(rsc, &out, false, m.conf()); err != nil {
		return nil, errors.Wrap(err, "merge pdf")
	}
	return out.Bytes(), nil
}
