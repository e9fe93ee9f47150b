package content

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tmcalumni/aclstrainer/internal/acls"
)

//go:embed scenarios.json
var seedData []byte

// Seed loads the shipped ACLS scenarios if the repository is empty.
// Idempotent: does nothing once any scenario exists.
func (s *Store) Seed(ctx context.Context, logger *slog.Logger) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&n); err != nil {
		return fmt.Errorf("counting scenarios: %w", err)
	}
	if n > 0 {
		return nil
	}

	var scenarios []acls.Scenario
	if err := json.Unmarshal(seedData, &scenarios); err != nil {
		return fmt.Errorf("decoding seed data: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range scenarios {
		sc := &scenarios[i]
		if err := insertScenario(ctx, tx, sc); err != nil {
			return fmt.Errorf("seeding scenario %q: %w", sc.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("seeded scenarios", "count", len(scenarios))
	return nil
}

func insertScenario(ctx context.Context, tx *sql.Tx, sc *acls.Scenario) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO scenarios (id, title, description, complexity, data)
		VALUES (?, ?, ?, ?, ?)
	`, sc.ID, sc.Title, sc.Description, sc.EffectiveComplexity(), string(data))
	return err
}
