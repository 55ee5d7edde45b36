package repository

import (
	"context"
	"database/sql"
	"time"

	"agrismart/internal/models"
)

// EventRepo is the append-only dashboard log.
type EventRepo interface {
	Append(ctx context.Context, e models.DashboardEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.DashboardEvent, error)
}

// ReadingRepo keeps the sensor reading history.
type ReadingRepo interface {
	Append(ctx context.Context, r models.SensorReading, at time.Time) error
	Latest(ctx context.Context, limit int) ([]models.ReadingSample, error)
}

type Repository struct {
	EventRepo   EventRepo
	ReadingRepo ReadingRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo:   NewEventSQLite(db),
		ReadingRepo: NewReadingSQLite(db),
	}
}
