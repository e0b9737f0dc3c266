package usecase

import (
	"context"
	"errors"

	"asabig-talent-platform/internal/converter"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
	"asabig-talent-platform/internal/domain/repository"
	"asabig-talent-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrShortlistNotFound     = errors.New("shortlist not found")
	ErrNotShortlistOwner     = errors.New("user does not own this shortlist")
	ErrAthleteAlreadyListed  = errors.New("athlete already on shortlist")
	ErrAthleteNotOnShortlist = errors.New("athlete not on shortlist")
)

type ShortlistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateShortlistRequest) (*dto.ShortlistResponse, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dto.ShortlistResponse, error)
	Get(ctx context.Context, ownerID uuid.UUID, id int64) (*dto.ShortlistResponse, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id int64) error
	AddAthlete(ctx context.Context, ownerID uuid.UUID, id int64, req *dto.AddShortlistAthleteRequest) error
	RemoveAthlete(ctx context.Context, ownerID uuid.UUID, id int64, athleteID uuid.UUID) error
}

type shortlistUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	shortlistRepo repository.ShortlistRepository
	athleteRepo   repository.AthleteRepository
	audit         service.AuditService
}

func NewShortlistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	shortlistRepo repository.ShortlistRepository,
	athleteRepo repository.AthleteRepository,
	audit service.AuditService,
) ShortlistUsecase {
	return &shortlistUsecase{
		db:            db,
		log:           log,
		shortlistRepo: shortlistRepo,
		athleteRepo:   athleteRepo,
		audit:         audit,
	}
}

func (u *shortlistUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateShortlistRequest) (*dto.ShortlistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shortlist := &entity.Shortlist{
		OwnerID: ownerID,
		Name:    req.Name,
	}

	if err := u.shortlistRepo.Create(tx, shortlist); err != nil {
		u.log.Warnf("Failed to create shortlist: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &ownerID, entity.AuditActionShortlistCreate, "shortlist", shortlist.Name, map[string]interface{}{
		"name": shortlist.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ShortlistToResponse(shortlist), nil
}

func (u *shortlistUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dto.ShortlistResponse, error) {
	shortlists, err := u.shortlistRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to list shortlists: %+v", err)
		return nil, err
	}

	return converter.ShortlistsToResponse(shortlists), nil
}

func (u *shortlistUsecase) Get(ctx context.Context, ownerID uuid.UUID, id int64) (*dto.ShortlistResponse, error) {
	shortlist, err := u.findOwned(u.db.WithContext(ctx), ownerID, id)
	if err != nil {
		return nil, err
	}

	return converter.ShortlistToResponse(shortlist), nil
}

func (u *shortlistUsecase) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	shortlist, err := u.findOwned(tx, ownerID, id)
	if err != nil {
		return err
	}

	if _, err := u.shortlistRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete shortlist: %+v", err)
		return err
	}

	if err := u.audit.LogDelete(ctx, tx, &ownerID, entity.AuditActionShortlistDelete, "shortlist", shortlist.Name, map[string]interface{}{
		"name": shortlist.Name,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *shortlistUsecase) AddAthlete(ctx context.Context, ownerID uuid.UUID, id int64, req *dto.AddShortlistAthleteRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwned(tx, ownerID, id); err != nil {
		return err
	}

	athlete, err := u.athleteRepo.FindByID(tx, req.AthleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return err
	}
	if athlete == nil {
		return ErrAthleteNotFound
	}

	item := &entity.ShortlistItem{
		ShortlistID: id,
		AthleteID:   req.AthleteID,
	}

	if err := u.shortlistRepo.AddItem(tx, item); err != nil {
		if isDuplicateKeyError(err, "idx_shortlist_athlete") {
			return ErrAthleteAlreadyListed
		}
		u.log.Warnf("Failed to add shortlist item: %+v", err)
		return err
	}

	if err := u.audit.LogCreate(ctx, tx, &ownerID, entity.AuditActionShortlistAdd, "shortlist_item", req.AthleteID.String(), map[string]interface{}{
		"shortlist_id": id,
		"athlete_id":   req.AthleteID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *shortlistUsecase) RemoveAthlete(ctx context.Context, ownerID uuid.UUID, id int64, athleteID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwned(tx, ownerID, id); err != nil {
		return err
	}

	removed, err := u.shortlistRepo.RemoveItem(tx, id, athleteID)
	if err != nil {
		u.log.Warnf("Failed to remove shortlist item: %+v", err)
		return err
	}
	if removed == 0 {
		return ErrAthleteNotOnShortlist
	}

	if err := u.audit.LogDelete(ctx, tx, &ownerID, entity.AuditActionShortlistRemove, "shortlist_item", athleteID.String(), map[string]interface{}{
		"shortlist_id": id,
		"athlete_id":   athleteID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// findOwned loads a shortlist and enforces ownership. Non-owners get
// ErrShortlistNotFound for shortlists that exist but belong to someone else,
// so listing IDs cannot be probed.
func (u *shortlistUsecase) findOwned(db *gorm.DB, ownerID uuid.UUID, id int64) (*entity.Shortlist, error) {
	shortlist, err := u.shortlistRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find shortlist: %+v", err)
		return nil, err
	}
	if shortlist == nil || shortlist.OwnerID != ownerID {
		return nil, ErrShortlistNotFound
	}
	return shortlist, nil
}
