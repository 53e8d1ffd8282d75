package registration

import (
	"os"
	"sync"
)

// fakePlatform writes a placeholder file instead of a real shell link and
// records every shortcut it was asked to write.
type fakePlatform struct {
	mu sync.Mutex

	dir      string
	dirErr   error
	writeErr error

	Links []Shortcut
}

func newFakePlatform(dir string) *fakePlatform {
	return &fakePlatform{dir: dir}
}

func (f *fakePlatform) StartMenuDir() (string, error) {
	if f.dirErr != nil {
		return "", f.dirErr
	}
	return f.dir, nil
}

func (f *fakePlatform) WriteLink(s Shortcut) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Links = append(f.Links, s)
	if f.writeErr != nil {
		return f.writeErr
	}
	return os.WriteFile(s.Path, []byte("[InternetShortcut]\n"), 0o644)
}
