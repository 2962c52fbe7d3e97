package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/cardpress/pkg/errors"
)

// MaxFileSize is the upload size limit in bytes.
const MaxFileSize = 10 << 20

// URLPrefix is the public path uploaded files are served under.
const URLPrefix = "/uploads/"

var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// Result describes a stored upload.
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// Store writes uploads into a directory on disk.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store for it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create upload directory")
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory uploads are written to, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and writes one upload. The original filename is only used
// for its extension; the stored name is a fresh UUID.
func (s *Store) Save(originalName, contentType string, r io.Reader) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	wantType, ok := allowedTypes[ext]
	if !ok {
		return nil, errors.NewField(errors.ErrCodeInvalidUpload, "file",
			"only image files can be uploaded (JPEG, PNG, GIF, WebP, SVG)")
	}
	// Browsers report image/jpg for some JPEGs; accept it as an alias.
	if contentType != wantType && !(wantType == "image/jpeg" && contentType == "image/jpg") {
		return nil, errors.NewField(errors.ErrCodeInvalidUpload, "file",
			"content type %q does not match extension %q", contentType, ext)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create upload file")
	}

	// Read one byte past the limit to tell an at-limit file from an oversized one.
	n, err := io.Copy(f, io.LimitReader(r, MaxFileSize+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write upload file")
	}
	if n > MaxFileSize {
		_ = os.Remove(path)
		return nil, errors.NewField(errors.ErrCodeInvalidUpload, "file",
			"file is too large (max 10MB)")
	}

	return &Result{
		URL:      URLPrefix + name,
		Filename: name,
		Size:     n,
		Type:     wantType,
	}, nil
}
