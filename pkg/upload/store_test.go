package upload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cardpress/pkg/errors"
)

func TestSave(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("\x89PNG fake image data")
	res, err := s.Save("dragon.PNG", "image/png", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if !strings.HasPrefix(res.URL, URLPrefix) {
		t.Errorf("URL = %q, want %q prefix", res.URL, URLPrefix)
	}
	if !strings.HasSuffix(res.Filename, ".png") {
		t.Errorf("Filename = %q, want .png suffix (lowercased)", res.Filename)
	}
	if strings.Contains(res.Filename, "dragon") {
		t.Errorf("Filename %q should not contain the original name", res.Filename)
	}
	if res.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", res.Size, len(data))
	}
	if res.Type != "image/png" {
		t.Errorf("Type = %q, want image/png", res.Type)
	}

	stored, err := os.ReadFile(filepath.Join(s.Dir(), res.Filename))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stored, data) {
		t.Error("stored bytes differ from upload")
	}
}

func TestSaveUniqueNames(t *testing.T) {
	s, _ := NewStore(t.TempDir())

	r1, err := s.Save("a.png", "image/png", strings.NewReader("one"))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s.Save("a.png", "image/png", strings.NewReader("two"))
	if err != nil {
		t.Fatal(err)
	}
	if r1.Filename == r2.Filename {
		t.Error("two uploads of the same name must not collide")
	}
}

func TestSaveRejectsBadTypes(t *testing.T) {
	s, _ := NewStore(t.TempDir())

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"executable extension", "virus.exe", "image/png"},
		{"no extension", "image", "image/png"},
		{"mime mismatch", "photo.png", "image/jpeg"},
		{"non-image mime", "photo.svg", "text/html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(tt.filename, tt.contentType, strings.NewReader("data"))
			if !errors.Is(err, errors.ErrCodeInvalidUpload) {
				t.Errorf("err = %v, want INVALID_UPLOAD", err)
			}
		})
	}
}

func TestSaveAcceptsJpgMimeAlias(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	res, err := s.Save("photo.jpg", "image/jpg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if res.Type != "image/jpeg" {
		t.Errorf("Type = %q, want canonical image/jpeg", res.Type)
	}
}

func TestSaveRejectsOversized(t *testing.T) {
	s, _ := NewStore(t.TempDir())

	big := bytes.NewReader(make([]byte, MaxFileSize+1))
	_, err := s.Save("big.png", "image/png", big)
	if !errors.Is(err, errors.ErrCodeInvalidUpload) {
		t.Fatalf("err = %v, want INVALID_UPLOAD", err)
	}

	// The partial file must not be left behind.
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("upload dir has %d leftover files", len(entries))
	}
}

func TestSaveAtLimitSucceeds(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	res, err := s.Save("exact.png", "image/png", bytes.NewReader(make([]byte, MaxFileSize)))
	if err != nil {
		t.Fatalf("Save error at exactly the limit: %v", err)
	}
	if res.Size != MaxFileSize {
		t.Errorf("Size = %d, want %d", res.Size, MaxFileSize)
	}
}
