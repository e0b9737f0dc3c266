package usecase

import (
	"context"
	"errors"
	"time"

	"asabig-talent-platform/internal/converter"
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
	"asabig-talent-platform/internal/domain/repository"
	"asabig-talent-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

type MetricUsecase interface {
	Record(ctx context.Context, actorID uuid.UUID, athleteID uuid.UUID, req *dto.RecordMetricRequest) (*dto.MetricResponse, error)
	ListByAthlete(ctx context.Context, athleteID uuid.UUID, metricName string) ([]dto.MetricResponse, error)
}

type metricUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	athleteRepo repository.AthleteRepository
	metricRepo  repository.MetricRepository
	audit       service.AuditService
}

func NewMetricUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	athleteRepo repository.AthleteRepository,
	metricRepo repository.MetricRepository,
	audit service.AuditService,
) MetricUsecase {
	return &metricUsecase{
		db:          db,
		log:         log,
		athleteRepo: athleteRepo,
		metricRepo:  metricRepo,
		audit:       audit,
	}
}

// Record appends one measurement to an athlete's metric log. The log is
// append-only: corrections are new entries, never edits.
func (u *metricUsecase) Record(ctx context.Context, actorID uuid.UUID, athleteID uuid.UUID, req *dto.RecordMetricRequest) (*dto.MetricResponse, error) {
	measuredAt := time.Now().UTC().Truncate(24 * time.Hour)
	if req.MeasuredAt != "" {
		parsed, err := time.Parse("2006-01-02", req.MeasuredAt)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		measuredAt = parsed
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

	entry := &entity.MetricEntry{
		AthleteID:  athleteID,
		MetricName: req.MetricName,
		Value:      req.Value,
		Unit:       req.Unit,
		MeasuredAt: measuredAt,
		Notes:      req.Notes,
	}

	if err := u.metricRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to record metric: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actorID, entity.AuditActionMetricRecord, "metric_entry", entry.MetricName, map[string]interface{}{
		"athlete_id": athleteID.String(),
		"metric":     entry.MetricName,
		"value":      entry.Value,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MetricToResponse(entry), nil
}

// ListByAthlete returns the athlete's metric history, optionally narrowed to
// one metric name, newest measurement first.
func (u *metricUsecase) ListByAthlete(ctx context.Context, athleteID uuid.UUID, metricName string) ([]dto.MetricResponse, error) {
	db := u.db.WithContext(ctx)

	athlete, err := u.athleteRepo.FindByID(db, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete: %+v", err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	metrics, err := u.metricRepo.FindByAthleteID(db, athleteID, metricName)
	if err != nil {
		u.log.Warnf("Failed to list metrics: %+v", err)
		return nil, err
	}

	return converter.MetricsToResponse(metrics), nil
}
