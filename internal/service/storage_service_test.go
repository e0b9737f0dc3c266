package service

import (
	"strings"
	"testing"

	"asabig-talent-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func TestSaveUploadWritesFileAndReturnsRelativePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewLocalStorageService(fs, "uploads", logrus.New())
	athleteID := uuid.New()

	stored, err := svc.SaveUpload(athleteID, entity.UploadTypeMedicalPDF, "clearance.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if !strings.HasPrefix(stored, "medical_pdf/"+athleteID.String()+"/") {
		t.Fatalf("unexpected stored path %q", stored)
	}
	if !strings.HasSuffix(stored, "_clearance.pdf") {
		t.Fatalf("stored path should keep original filename, got %q", stored)
	}

	if !svc.FileExists(stored) {
		t.Fatal("stored file should exist")
	}
}

func TestSaveUploadStripsDirectoryComponents(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewLocalStorageService(fs, "uploads", logrus.New())

	stored, err := svc.SaveUpload(uuid.New(), entity.UploadTypePhoto, "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if strings.Contains(stored, "..") {
		t.Fatalf("stored path must not contain traversal components: %q", stored)
	}
}

// Remove undoes a stored file so a failed DB write does not strand it on
// disk; missing files and empty paths are tolerated.
func TestRemoveDeletesStoredFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewLocalStorageService(fs, "uploads", logrus.New())

	stored, err := svc.SaveUpload(uuid.New(), entity.UploadTypePhoto, "face.jpg", strings.NewReader("jpeg"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if err := svc.Remove(stored); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if svc.FileExists(stored) {
		t.Fatal("removed file should be gone")
	}

	if err := svc.Remove(stored); err != nil {
		t.Fatalf("removing an already-missing file should not error: %v", err)
	}
	if err := svc.Remove(""); err != nil {
		t.Fatalf("removing an empty path should not error: %v", err)
	}
}

func TestFileExistsNegativeCases(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := NewLocalStorageService(fs, "uploads", logrus.New())

	if svc.FileExists("") {
		t.Error("empty path must read as absent")
	}
	if svc.FileExists("photo/nope.jpg") {
		t.Error("missing file must read as absent")
	}

	if err := fs.MkdirAll("uploads/photo/dir", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if svc.FileExists("photo/dir") {
		t.Error("directory must not count as an existing file")
	}
}
