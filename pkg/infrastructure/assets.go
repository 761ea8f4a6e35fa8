package infrastructure

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	StaticPrefix = "/static/"
	MediaPrefix  = "/media/"
)

// AssetResolver maps the three reference namespaces used by stored records
// onto something a renderer or fetcher can read:
//
//   - absolute http(s) URLs are returned unchanged
//   - /static/... is served from StaticRoot on disk
//   - /media/... and bare upload paths ("certificates/x.pdf") come from
//     MediaBaseURL when set, otherwise from MediaRoot on disk
//
// Local results are absolute file:// URLs and must exist.
type AssetResolver struct {
	StaticRoot   string
	MediaRoot    string
	MediaBaseURL string
}

func NewAssetResolver(staticRoot, mediaRoot, mediaBaseURL string) *AssetResolver {
	return &AssetResolver{
		StaticRoot:   staticRoot,
		MediaRoot:    mediaRoot,
		MediaBaseURL: strings.TrimRight(mediaBaseURL, "/"),
	}
}

func (r *AssetResolver) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty asset reference")
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return ref, nil
	}

	if rel, ok := strings.CutPrefix(ref, StaticPrefix); ok {
		return localFile(r.StaticRoot, rel)
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(ref, MediaPrefix), "/")
	if r.MediaBaseURL != "" {
		clean := strings.TrimPrefix(path.Clean("/"+rel), "/")
		return r.MediaBaseURL + "/" + clean, nil
	}
	return localFile(r.MediaRoot, rel)
}

func localFile(root, rel string) (string, error) {
	if root == "" {
		return "", errors.Errorf("no root configured for %q", rel)
	}
	// Clean against "/" so ".." cannot climb out of root.
	clean := filepath.FromSlash(strings.TrimPrefix(path.Clean("/"+rel), "/"))
	abs, err := filepath.Abs(filepath.Join(root, clean))
	if err != nil {
		return "", errors.Wrap(err, "resolve asset path")
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "asset %q", rel)
	}
	if st.IsDir() {
		return "", errors.Errorf("asset %q is a directory", rel)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

// PublicAssets resolves the same references to URLs a browser can load:
// local files are addressed through the /static/ and /media/ routes.
type PublicAssets struct {
	*AssetResolver
}

func (p PublicAssets) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty asset reference")
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return ref, nil
	}
	if strings.HasPrefix(ref, StaticPrefix) {
		return StaticPrefix + strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(ref, StaticPrefix)), "/"), nil
	}
	rel := strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(ref, MediaPrefix)), "/")
	if p.MediaBaseURL != "" {
		return p.MediaBaseURL + "/" + rel, nil
	}
	return MediaPrefix + rel, nil
}
