package db

import (
	"context"

	"vibr/internal/models"
)

// IncrementStageLookup upserts the resolution count for a category and stage.
func (d *DB) IncrementStageLookup(ctx context.Context, category, stage string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO resolution_lookups (category, stage, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (category, stage) DO UPDATE
		SET count = resolution_lookups.count + 1, last_seen_at = NOW()
	`, category, stage)
	return err
}

// GetAllStageLookups returns all resolution lookup rows for metrics export.
func (d *DB) GetAllStageLookups(ctx context.Context) ([]models.StageLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT category, stage, count, last_seen_at FROM resolution_lookups ORDER BY category, stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.StageLookup
	for rows.Next() {
		var l models.StageLookup
		if err := rows.Scan(&l.Category, &l.Stage, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// ResetStageLookups removes all resolution lookup rows.
func (d *DB) ResetStageLookups(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, `DELETE FROM resolution_lookups`)
	return err
}
