package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage turns an uploaded file into a public URL. The rest of the system
// treats this as a black box: bytes in, URL out.
type Storage interface {
	Save(name string, r io.Reader) (url string, err error)
}

// Local writes uploads to a directory served statically by the server.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the file under a random name, keeping the original extension.
func (l *Local) Save(name string, r io.Reader) (string, error) {
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(name))
	path := filepath.Join(l.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return l.baseURL + "/" + filename, nil
}
