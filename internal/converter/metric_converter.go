package converter

import (
	"asabig-talent-platform/internal/delivery/dto"
	"asabig-talent-platform/internal/domain/entity"
)

// MetricToResponse converts a MetricEntry entity to MetricResponse DTO
func MetricToResponse(metric *entity.MetricEntry) *dto.MetricResponse {
	if metric == nil {
		return nil
	}

	return &dto.MetricResponse{
		ID:         metric.ID,
		AthleteID:  metric.AthleteID,
		MetricName: metric.MetricName,
		Value:      metric.Value,
		Unit:       metric.Unit,
		MeasuredAt: metric.MeasuredAt,
		Notes:      metric.Notes,
		CreatedAt:  metric.CreatedAt,
	}
}

func MetricsToResponse(metrics []entity.MetricEntry) []dto.MetricResponse {
	responses := make([]dto.MetricResponse, 0, len(metrics))
	for i := range metrics {
		responses = append(responses, *MetricToResponse(&metrics[i]))
	}
	return responses
}
