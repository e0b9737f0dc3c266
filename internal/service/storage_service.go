package service

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// StorageService persists athlete upload files and answers existence checks.
// Paths returned and accepted are relative to the storage root, which is
// what gets stored on the records; the completion score asks FileExists with
// the stored photo path at computation time.
type StorageService interface {
	SaveUpload(athleteID uuid.UUID, uploadType entity.UploadType, filename string, content io.Reader) (string, error)
	FileExists(storedPath string) bool
	Remove(storedPath string) error
}

type localStorageService struct {
	fs   afero.Fs
	root string
	log  *logrus.Logger
}

func NewLocalStorageService(fs afero.Fs, root string, log *logrus.Logger) StorageService {
	return &localStorageService{fs: fs, root: root, log: log}
}

// SaveUpload writes the file under <root>/<type>/<athleteID>/ with a random
// prefix so repeated uploads of the same filename never collide.
func (s *localStorageService) SaveUpload(athleteID uuid.UUID, uploadType entity.UploadType, filename string, content io.Reader) (string, error) {
	safeName := filepath.Base(strings.TrimSpace(filename))
	if safeName == "" || safeName == "." || safeName == string(filepath.Separator) {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}

	relPath := path.Join(string(uploadType), athleteID.String(), uuid.New().String()+"_"+safeName)
	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	f, err := s.fs.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return relPath, nil
}

// Remove deletes a stored file. Empty paths and already-missing files are
// not errors, so callers can use it to undo a partial upload.
func (s *localStorageService) Remove(storedPath string) error {
	if strings.TrimSpace(storedPath) == "" {
		return nil
	}

	err := s.fs.Remove(filepath.Join(s.root, filepath.FromSlash(storedPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileExists reports whether a stored relative path resolves to a regular
// file under the storage root. Empty paths and lookup errors read as absent.
func (s *localStorageService) FileExists(storedPath string) bool {
	if strings.TrimSpace(storedPath) == "" {
		return false
	}

	info, err := s.fs.Stat(filepath.Join(s.root, filepath.FromSlash(storedPath)))
	if err != nil {
		return false
	}
	return !info.IsDir()
}
