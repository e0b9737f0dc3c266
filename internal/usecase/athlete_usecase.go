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

// ComparisonLimit caps side-by-side athlete comparison.
const ComparisonLimit = 4

var (
	ErrAthleteNotFound     = errors.New("athlete not found")
	ErrNotRecordOwner      = errors.New("user does not own this athlete record")
	ErrTooManyComparisons  = errors.New("too many athletes requested for comparison")
	ErrNoComparisonTargets = errors.New("no athletes requested for comparison")
)

type AthleteUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAthleteRequest) (*dto.AthleteResponse, error)
	List(ctx context.Context, query *dto.ListAthletesQuery) ([]dto.AthleteResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AthleteResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID, req *dto.UpdateAthleteRequest) (*dto.AthleteResponse, error)
	Deactivate(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) error
	Compare(ctx context.Context, ids []uuid.UUID) (*dto.ComparisonResponse, error)
	GetCompletion(ctx context.Context, id uuid.UUID) (*dto.CompletionResponse, error)
}

type athleteUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	athleteRepo repository.AthleteRepository
	metricRepo  repository.MetricRepository
	uploadRepo  repository.UploadRepository
	storage     service.StorageService
	audit       service.AuditService
}

func NewAthleteUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	athleteRepo repository.AthleteRepository,
	metricRepo repository.MetricRepository,
	uploadRepo repository.UploadRepository,
	storage service.StorageService,
	audit service.AuditService,
) AthleteUsecase {
	return &athleteUsecase{
		db:          db,
		log:         log,
		athleteRepo: athleteRepo,
		metricRepo:  metricRepo,
		uploadRepo:  uploadRepo,
		storage:     storage,
		audit:       audit,
	}
}

// Create registers a staff-entered athlete record with no linked account.
func (u *athleteUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAthleteRequest) (*dto.AthleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	athlete := &entity.Athlete{
		FullName:     req.FullName,
		Gender:       entity.NormalizeGender(req.Gender),
		BirthYear:    req.BirthYear,
		AgeGroup:     req.AgeGroup,
		Sport:        req.Sport,
		Club:         req.Club,
		City:         req.City,
		DominantSide: req.DominantSide,
		Preferences:  entity.JSON(req.Preferences),
		IsActive:     &active,
	}

	if err := u.athleteRepo.Create(tx, athlete); err != nil {
		u.log.Warnf("Failed to create athlete: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionAthleteCreate, "athlete", athlete.ID.String(), map[string]interface{}{
		"full_name": athlete.FullName,
		"sport":     athlete.Sport,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AthleteToResponse(athlete), nil
}

func (u *athleteUsecase) List(ctx context.Context, query *dto.ListAthletesQuery) ([]dto.AthleteResponse, error) {
	filter := &entity.AthleteFilter{
		Gender:   entity.ParseGenderSelection(query.Gender),
		Sport:    query.Sport,
		Club:     query.Club,
		City:     query.City,
		AgeGroup: query.AgeGroup,
		Name:     query.Name,
	}

	athletes, err := u.athleteRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list athletes: %+v", err)
		return nil, err
	}

	return converter.AthletesToResponse(athletes), nil
}

func (u *athleteUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AthleteResponse, error) {
	athlete, err := u.athleteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	return converter.AthleteToResponse(athlete), nil
}

// Update mutates profile fields. Players may only edit their own record;
// staff roles may edit any record.
func (u *athleteUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID, req *dto.UpdateAthleteRequest) (*dto.AthleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	athlete, err := u.athleteRepo.FindByID(tx, id)
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

	before := map[string]interface{}{
		"full_name": athlete.FullName,
		"gender":    athlete.Gender,
		"sport":     athlete.Sport,
		"club":      athlete.Club,
		"city":      athlete.City,
	}

	applyAthleteUpdate(athlete, req)

	if err := u.athleteRepo.Update(tx, athlete); err != nil {
		u.log.Warnf("Failed to update athlete: %+v", err)
		return nil, err
	}

	after := map[string]interface{}{
		"full_name": athlete.FullName,
		"gender":    athlete.Gender,
		"sport":     athlete.Sport,
		"club":      athlete.Club,
		"city":      athlete.City,
	}

	if err := u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionAthleteUpdate, "athlete", athlete.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AthleteToResponse(athlete), nil
}

// Deactivate soft-deletes a record. It disappears from listings but history
// (metrics, uploads, notes) stays intact.
func (u *athleteUsecase) Deactivate(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	athlete, err := u.athleteRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return err
	}
	if athlete == nil {
		return ErrAthleteNotFound
	}
	if err := authorizeAthleteWrite(athlete, actorID, actorRoleID); err != nil {
		return err
	}

	inactive := false
	athlete.IsActive = &inactive

	if err := u.athleteRepo.Update(tx, athlete); err != nil {
		u.log.Warnf("Failed to deactivate athlete: %+v", err)
		return err
	}

	if err := u.audit.LogDelete(ctx, tx, &actorID, entity.AuditActionAthleteDeactivate, "athlete", athlete.ID.String(), map[string]interface{}{
		"full_name": athlete.FullName,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Compare loads up to ComparisonLimit athletes side by side, each with a
// freshly computed completion score.
func (u *athleteUsecase) Compare(ctx context.Context, ids []uuid.UUID) (*dto.ComparisonResponse, error) {
	if len(ids) == 0 {
		return nil, ErrNoComparisonTargets
	}
	if len(ids) > ComparisonLimit {
		return nil, ErrTooManyComparisons
	}

	athletes, err := u.athleteRepo.FindByIDs(u.db.WithContext(ctx), ids)
	if err != nil {
		u.log.Warnf("Failed to load athletes for comparison: %+v", err)
		return nil, err
	}
	if len(athletes) != len(ids) {
		return nil, ErrAthleteNotFound
	}

	response := &dto.ComparisonResponse{Athletes: make([]dto.ComparisonEntry, 0, len(athletes))}
	for i := range athletes {
		score, err := u.computeCompletion(ctx, &athletes[i])
		if err != nil {
			return nil, err
		}
		response.Athletes = append(response.Athletes, dto.ComparisonEntry{
			Athlete:    *converter.AthleteToResponse(&athletes[i]),
			Completion: score,
		})
	}

	return response, nil
}

// GetCompletion computes the completion score fresh on every call; nothing
// is cached or persisted.
func (u *athleteUsecase) GetCompletion(ctx context.Context, id uuid.UUID) (*dto.CompletionResponse, error) {
	athlete, err := u.athleteRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	score, err := u.computeCompletion(ctx, athlete)
	if err != nil {
		return nil, err
	}

	return &dto.CompletionResponse{
		AthleteID: athlete.ID,
		Total:     score.Total,
		Breakdown: score.Breakdown,
	}, nil
}

func (u *athleteUsecase) computeCompletion(ctx context.Context, athlete *entity.Athlete) (entity.CompletionScore, error) {
	db := u.db.WithContext(ctx)

	metrics, err := u.metricRepo.FindByAthleteID(db, athlete.ID, "")
	if err != nil {
		u.log.Warnf("Failed to load metrics for completion: %+v", err)
		return entity.CompletionScore{}, err
	}

	uploads, err := u.uploadRepo.FindByAthleteID(db, athlete.ID)
	if err != nil {
		u.log.Warnf("Failed to load uploads for completion: %+v", err)
		return entity.CompletionScore{}, err
	}

	photoExists := u.storage.FileExists(athlete.PhotoPath)
	return entity.ComputeCompletion(athlete, metrics, uploads, photoExists), nil
}

// authorizeAthleteWrite gates writes to an athlete record: staff roles may
// write any record, everyone else only the record linked to their account.
func authorizeAthleteWrite(athlete *entity.Athlete, actorID uuid.UUID, actorRoleID int) error {
	switch actorRoleID {
	case entity.RoleIDAdmin, entity.RoleIDScout, entity.RoleIDAcademy:
		return nil
	}
	if athlete.UserID != nil && *athlete.UserID == actorID {
		return nil
	}
	return ErrNotRecordOwner
}

func applyAthleteUpdate(athlete *entity.Athlete, req *dto.UpdateAthleteRequest) {
	if req.FullName != "" {
		athlete.FullName = req.FullName
	}
	if req.Gender != "" {
		athlete.Gender = entity.NormalizeGender(req.Gender)
	}
	if req.BirthYear != nil {
		athlete.BirthYear = req.BirthYear
	}
	if req.AgeGroup != "" {
		athlete.AgeGroup = req.AgeGroup
	}
	if req.Sport != "" {
		athlete.Sport = req.Sport
	}
	if req.Club != "" {
		athlete.Club = req.Club
	}
	if req.City != "" {
		athlete.City = req.City
	}
	if req.DominantSide != "" {
		athlete.DominantSide = req.DominantSide
	}
	if req.Preferences != nil {
		athlete.Preferences = entity.JSON(req.Preferences)
	}
}
