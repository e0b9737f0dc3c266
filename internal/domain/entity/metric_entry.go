package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetricEntry is one recorded test measurement for an athlete. The log is
// append-only; repeated entries under the same metric name form a time series.
type MetricEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AthleteID  uuid.UUID `gorm:"type:uuid;not null;index" json:"athlete_id"`
	MetricName string    `gorm:"type:varchar(100);not null;index" json:"metric_name"`
	Value      float64   `gorm:"type:numeric;not null" json:"value"`
	Unit       string    `gorm:"type:varchar(30)" json:"unit,omitempty"`
	MeasuredAt time.Time `gorm:"type:date;not null;index" json:"measured_at"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Athlete Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

func (MetricEntry) TableName() string {
	return "metric_entries"
}
