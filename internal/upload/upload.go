// Package upload persists user-submitted images under a per-purpose area of
// the uploads directory and yields the stored filenames for the owning record.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Storage areas under the uploads root.
const (
	RoomArea    = "rooms"
	ProfileArea = "profiles"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are stripped and anything outside [A-Za-z0-9_.-] becomes
// an underscore. Returns "" when nothing safe remains.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// Saver writes uploaded files below Root. No size or type validation is
// performed; any extension is accepted.
type Saver struct {
	Root string
}

// NewSaver creates the uploads root and its storage areas.
func NewSaver(root string) (*Saver, error) {
	for _, area := range []string{RoomArea, ProfileArea} {
		if err := os.MkdirAll(filepath.Join(root, area), 0o755); err != nil {
			return nil, err
		}
	}
	return &Saver{Root: root}, nil
}

// Save stores a single file in the area and returns the stored filename.
// Files whose name sanitizes to nothing are skipped and yield "".
func (s *Saver) Save(area string, fh *multipart.FileHeader) (string, error) {
	name := SanitizeFilename(fh.Filename)
	if name == "" {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Root, area, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// SaveAll stores every non-empty file entry in order and returns the stored
// filenames. Empty or missing entries are silently skipped, not an error.
func (s *Saver) SaveAll(area string, files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))
	for _, fh := range files {
		if fh == nil || fh.Filename == "" {
			continue
		}
		name, err := s.Save(area, fh)
		if err != nil {
			return nil, err
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
