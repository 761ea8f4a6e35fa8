package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

const maxCertificateBytes = 32 << 20

// HTTPFetcher downloads certificate files. file:// URLs produced by the
// AssetResolver for on-disk media are read directly.
type HTTPFetcher struct {
	HTTP *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{HTTP: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}
	switch u.Scheme {
	case "file":
		return readLimited(u.Path)
	case "http", "https":
	default:
		return nil, errors.Errorf("unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get certificate")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("certificate host returned non-200 status: %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxCertificateBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read certificate body")
	}
	if len(b) > maxCertificateBytes {
		return nil, errors.Errorf("certificate exceeds %d bytes", maxCertificateBytes)
	}
	return b, nil
}

func readLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open certificate")
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxCertificateBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read certificate")
	}
	if len(b) > maxCertificateBytes {
		return nil, errors.Errorf("certificate exceeds %d bytes", maxCertificateBytes)
	}
	return b, nil
}
