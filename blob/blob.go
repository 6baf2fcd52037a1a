// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package blob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded binaries and hands back publicly resolvable
// URLs. Implementations may be local disk or a remote object host.
type Store interface {
	// Save writes data under a fresh name derived from filename's
	// extension and returns the public URL.
	Save(data []byte, filename, mimeType string) (string, error)
	// Delete removes the blob a previously returned URL points at.
	// Deleting a blob that is already gone is not an error.
	Delete(url string) error
}

// Local stores blobs as files in a directory served under /uploads/.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates the upload directory if needed. baseURL is the
// externally visible server address, without a trailing slash.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (l *Local) Save(data []byte, filename, mimeType string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return l.baseURL + "/uploads/" + name, nil
}

func (l *Local) Delete(url string) error {
	name := path.Base(url)
	// The URL is stored data; refuse anything that could escape the dir.
	if name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid blob reference %q", url)
	}
	err := os.Remove(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
