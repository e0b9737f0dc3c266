package usecase

import (
	"context"
	"errors"
	"io"

	"asabig-talent-platform/internal/converter"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
	"asabig-talent-platform/internal/domain/repository"
	"asabig-talent-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidUploadType = errors.New("invalid upload type")

type UploadUsecase interface {
	CreateFile(ctx context.Context, actorID uuid.UUID, actorRoleID int, athleteID uuid.UUID, uploadType string, filename string, content io.Reader) (*dto.UploadResponse, error)
	CreateLink(ctx context.Context, actorID uuid.UUID, actorRoleID int, athleteID uuid.UUID, req *dto.CreateLinkUploadRequest) (*dto.UploadResponse, error)
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]dto.UploadResponse, error)
}

type uploadUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	athleteRepo repository.AthleteRepository
	uploadRepo  repository.UploadRepository
	storage     service.StorageService
	audit       service.AuditService
}

func NewUploadUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	athleteRepo repository.AthleteRepository,
	uploadRepo repository.UploadRepository,
	storage service.StorageService,
	audit service.AuditService,
) UploadUsecase {
	return &uploadUsecase{
		db:          db,
		log:         log,
		athleteRepo: athleteRepo,
		uploadRepo:  uploadRepo,
		storage:     storage,
		audit:       audit,
	}
}

// CreateFile stores a multipart file and registers the upload record. A photo
// upload also becomes the athlete's current profile photo.
func (u *uploadUsecase) CreateFile(ctx context.Context, actorID uuid.UUID, actorRoleID int, athleteID uuid.UUID, uploadType string, filename string, content io.Reader) (*dto.UploadResponse, error) {
	kind := entity.UploadType(uploadType)
	if !kind.IsValid() {
		return nil, ErrInvalidUploadType
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	athlete, err := u.athleteRepo.FindByID(tx, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	if err := authorizeAthleteWrite(athlete, actorID, actorRoleID); err != nil {
		return nil, err
	}

	storedPath, err := u.storage.SaveUpload(athleteID, kind, filename, content)
	if err != nil {
		u.log.Warnf("Failed to store upload file: %+v", err)
		return nil, err
	}

	record := &entity.UploadRecord{
		AthleteID:  athleteID,
		UploadType: kind,
		FilePath:   storedPath,
		FileName:   filename,
	}

	if err := u.uploadRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create upload record: %+v", err)
		u.discardStoredFile(storedPath)
		return nil, err
	}

	if kind == entity.UploadTypePhoto {
		athlete.PhotoPath = storedPath
		if err := u.athleteRepo.Update(tx, athlete); err != nil {
			u.log.Warnf("Failed to update athlete photo path: %+v", err)
			u.discardStoredFile(storedPath)
			return nil, err
		}
	}

	if err := u.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionUploadCreate, "upload_record", storedPath, map[string]interface{}{
		"athlete_id":  athleteID.String(),
		"upload_type": string(kind),
		"file_name":   filename,
	}); err != nil {
		u.discardStoredFile(storedPath)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		u.discardStoredFile(storedPath)
		return nil, err
	}

	return converter.UploadToResponse(record), nil
}

// CreateLink registers an external URL (typically hosted video) as an upload.
func (u *uploadUsecase) CreateLink(ctx context.Context, actorID uuid.UUID, actorRoleID int, athleteID uuid.UUID, req *dto.CreateLinkUploadRequest) (*dto.UploadResponse, error) {
	kind := entity.UploadType(req.UploadType)
	if !kind.IsValid() {
		return nil, ErrInvalidUploadType
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	athlete, err := u.athleteRepo.FindByID(tx, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	if err := authorizeAthleteWrite(athlete, actorID, actorRoleID); err != nil {
		return nil, err
	}

	record := &entity.UploadRecord{
		AthleteID:  athleteID,
		UploadType: kind,
		LinkURL:    req.LinkURL,
	}

	if err := u.uploadRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create upload record: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionUploadCreate, "upload_record", req.LinkURL, map[string]interface{}{
		"athlete_id":  athleteID.String(),
		"upload_type": string(kind),
		"link_url":    req.LinkURL,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UploadToResponse(record), nil
}

// discardStoredFile removes a file written ahead of a transaction that did
// not commit, so rollbacks leave no orphans on disk. Best effort: a failed
// removal is logged, not surfaced over the original error.
func (u *uploadUsecase) discardStoredFile(storedPath string) {
	if err := u.storage.Remove(storedPath); err != nil {
		u.log.Warnf("Failed to remove orphaned upload file %s: %+v", storedPath, err)
	}
}

func (u *uploadUsecase) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]dto.UploadResponse, error) {
	db := u.db.WithContext(ctx)

	athlete, err := u.athleteRepo.FindByID(db, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	uploads, err := u.uploadRepo.FindByAthleteID(db, athleteID)
	if err != nil {
		u.log.Warnf("Failed to list uploads: %+v", err)
		return nil, err
	}

	return converter.UploadsToResponse(uploads), nil
}
