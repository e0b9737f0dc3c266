package usecase

import (
	"context"

	"asabig-talent-platform/internal/converter"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
	"asabig-talent-platform/internal/domain/repository"
	"asabig-talent-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NoteUsecase interface {
	Create(ctx context.Context, authorID uuid.UUID, athleteID uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]dto.NoteResponse, error)
}

type noteUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	athleteRepo repository.AthleteRepository
	noteRepo    repository.NoteRepository
	audit       service.AuditService
}

func NewNoteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	athleteRepo repository.AthleteRepository,
	noteRepo repository.NoteRepository,
	audit service.AuditService,
) NoteUsecase {
	return &noteUsecase{
		db:          db,
		log:         log,
		athleteRepo: athleteRepo,
		noteRepo:    noteRepo,
		audit:       audit,
	}
}

func (u *noteUsecase) Create(ctx context.Context, authorID uuid.UUID, athleteID uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
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

	note := &entity.ScoutNote{
		AthleteID: athleteID,
		AuthorID:  authorID,
		Body:      req.Body,
	}

	if err := u.noteRepo.Create(tx, note); err != nil {
		u.log.Warnf("Failed to create note: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &authorID, entity.AuditActionNoteCreate, "scout_note", athleteID.String(), map[string]interface{}{
		"athlete_id": athleteID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NoteToResponse(note), nil
}

func (u *noteUsecase) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]dto.NoteResponse, error) {
	db := u.db.WithContext(ctx)

	athlete, err := u.athleteRepo.FindByID(db, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	notes, err := u.noteRepo.FindByAthleteID(db, athleteID)
	if err != nil {
		u.log.Warnf("Failed to list notes: %+v", err)
		return nil, err
	}

	return converter.NotesToResponse(notes), nil
}
