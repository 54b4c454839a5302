package markers

import (
	"context"
	"fmt"
	"time"
)

// MarkFired records that the ritual reached the threshold. Returns true iff
// this call inserted the marker, i.e. the milestone had not fired before.
//
// Uses ON CONFLICT(ritual, threshold) DO NOTHING for idempotency: duplicate
// calls are silently ignored and report inserted=false.
func (s *Store) MarkFired(ctx context.Context, ritual string, threshold int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO milestone_firings (ritual, threshold, fired_at)
		VALUES (?, ?, ?)
		ON CONFLICT(ritual, threshold) DO NOTHING
	`, ritual, threshold, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("mark fired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark fired: %w", err)
	}
	return n > 0, nil
}

// Fired reports whether the (ritual, threshold) marker exists.
func (s *Store) Fired(ctx context.Context, ritual string, threshold int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM milestone_firings
			WHERE ritual = ? AND threshold = ?
		)
	`, ritual, threshold).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query fired: %w", err)
	}
	return exists, nil
}

// FiredThresholds returns all thresholds that have fired for the ritual,
// in ascending order.
func (s *Store) FiredThresholds(ctx context.Context, ritual string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT threshold FROM milestone_firings
		WHERE ritual = ?
		ORDER BY threshold ASC
	`, ritual)
	if err != nil {
		return nil, fmt.Errorf("query fired thresholds: %w", err)
	}
	defer rows.Close()

	var thresholds []int
	for rows.Next() {
		var th int
		if err := rows.Scan(&th); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		thresholds = append(thresholds, th)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate thresholds: %w", err)
	}
	return thresholds, nil
}

// RenameRitual re-keys all markers from oldName to newName.
//
// If a threshold already fired under the new name, that marker wins and the
// old one is dropped; a rename must never end with two rows for the same
// (ritual, threshold).
func (s *Store) RenameRitual(ctx context.Context, oldName, newName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("rename markers: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE OR IGNORE milestone_firings SET ritual = ? WHERE ritual = ?`,
		newName, oldName); err != nil {
		return fmt.Errorf("rename markers: %w", err)
	}
	// Rows that collided with existing newName markers were left behind.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM milestone_firings WHERE ritual = ?`, oldName); err != nil {
		return fmt.Errorf("rename markers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rename markers: %w", err)
	}
	return nil
}

// PruneRitual deletes all markers for the ritual. Called when the ritual is
// removed so a later ritual reusing the name starts with a clean slate.
func (s *Store) PruneRitual(ctx context.Context, ritual string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM milestone_firings WHERE ritual = ?`, ritual); err != nil {
		return fmt.Errorf("prune markers: %w", err)
	}
	return nil
}
