package i18n

import (
	"os"
	"path/filepath"
	"strings"
)

// FilePersister keeps the selected language in a single file under the
// user's config directory, the desktop counterpart of a browser's
// localStorage key.
type FilePersister struct {
	path string
}

// NewFilePersister resolves the storage path. dir overrides the default
// location, mainly for tests.
func NewFilePersister(dir string) (*FilePersister, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "leave-request-dashboard")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FilePersister{path: filepath.Join(dir, "language")}, nil
}

func (p *FilePersister) Load() (string, error) {
	raw, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (p *FilePersister) Save(code string) error {
	return os.WriteFile(p.path, []byte(code+"\n"), 0o644)
}
