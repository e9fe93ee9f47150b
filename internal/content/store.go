// Package content is the read-only scenario repository. Scenarios are
// stored as one JSON document per row; the engine only ever reads them.
package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

// ErrNotFound is returned for scenario ids the repository does not hold.
var ErrNotFound = errors.New("scenario not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Scenario returns the full scenario definition by id.
func (s *Store) Scenario(ctx context.Context, id string) (*acls.Scenario, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM scenarios WHERE id = ?
	`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sc acls.Scenario
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, fmt.Errorf("decoding scenario %q: %w", id, err)
	}
	return &sc, nil
}

// List returns summaries of every scenario, ordered by title.
func (s *Store) List(ctx context.Context) ([]acls.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, complexity
		FROM scenarios
		ORDER BY title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []acls.Summary
	for rows.Next() {
		var sum acls.Summary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Description, &sum.Complexity); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
