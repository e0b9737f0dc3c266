package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordMetricRequest struct {
	MetricName string  `json:"metric_name" validate:"required,max=100"`
	Value      float64 `json:"value" validate:"required"`
	Unit       string  `json:"unit" validate:"omitempty,max=30"`
	MeasuredAt string  `json:"measured_at" validate:"omitempty,datetime=2006-01-02"`
	Notes      string  `json:"notes" validate:"omitempty,max=500"`
}

type MetricResponse struct {
	ID         int64     `json:"id"`
	AthleteID  uuid.UUID `json:"athlete_id"`
	MetricName string    `json:"metric_name"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
