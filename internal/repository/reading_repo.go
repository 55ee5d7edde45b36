package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"agrismart/internal/models"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite {
	return &ReadingSQLite{db: db}
}

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500

	insertReadingSQL = `
		INSERT INTO sensor_readings (temp_c, humidity, soil_moisture, battery, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`

	selectLatestReadingsSQL = `
		SELECT id, temp_c, humidity, soil_moisture, battery, recorded_at
		FROM sensor_readings ORDER BY recorded_at DESC, id DESC LIMIT ?
	`
)

// clampLimit maps non-positive limits to the default and caps large ones.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultHistoryLimit
	case limit > maxHistoryLimit:
		return maxHistoryLimit
	default:
		return limit
	}
}

// Append stores one reading. A zero time is replaced by now; times are stored in UTC.
func (r *ReadingSQLite) Append(ctx context.Context, reading models.SensorReading, at time.Time) error {
	if at.IsZero() {
		at = time.Now().UTC()
	} else {
		at = at.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertReadingSQL,
		reading.TemperatureC,
		reading.Humidity,
		reading.SoilMoisture,
		reading.BatteryLevel,
		at,
	)
	if err != nil {
		return fmt.Errorf("insert sensor reading: %w", err)
	}
	return nil
}

// Latest returns up to limit readings, newest first.
func (r *ReadingSQLite) Latest(ctx context.Context, limit int) ([]models.ReadingSample, error) {
	rows, err := r.db.QueryContext(ctx, selectLatestReadingsSQL, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query sensor readings: %w", err)
	}
	defer rows.Close()

	var out []models.ReadingSample
	for rows.Next() {
		var s models.ReadingSample
		if err := rows.Scan(
			&s.ID,
			&s.Reading.TemperatureC,
			&s.Reading.Humidity,
			&s.Reading.SoilMoisture,
			&s.Reading.BatteryLevel,
			&s.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sensor reading: %w", err)
		}
		s.RecordedAt = s.RecordedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
