// Command seeder populates a development database with demo batches and
// users. It is intended for local environments, not production.
//
// Requires DATABASE_DSN (or a config file via CONFIG_PATH) to be set.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coachdesk/coachdesk-backend/internal/adapter/postgres"
	"github.com/coachdesk/coachdesk-backend/internal/app"
	"github.com/coachdesk/coachdesk-backend/internal/config"
)

var batchNames = []string{
	"Morning A",
	"Morning B",
	"Evening A",
	"Evening B",
	"Weekend",
}

type demoUser struct {
	email string
	name  string
	role  string
	batch string
}

var demoUsers = []demoUser{
	{email: "admin@coachdesk.local", name: "Demo Admin", role: "admin"},
	{email: "asha@coachdesk.local", name: "Asha Verma", role: "student", batch: "Morning A"},
	{email: "ravi@coachdesk.local", name: "Ravi Kumar", role: "student", batch: "Evening A"},
	{email: "meera@coachdesk.local", name: "Meera Iyer", role: "student"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.Int("batches", len(batchNames)),
		slog.Int("users", len(demoUsers)),
	)
}

// seed is idempotent: rerunning against an already seeded database is a no-op.
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range batchNames {
		_, err := pool.Exec(ctx,
			`INSERT INTO batches (name) VALUES ($1) ON CONFLICT DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	for _, u := range demoUsers {
		if u.batch != "" {
			_, err := pool.Exec(ctx,
				`INSERT INTO users (email, name, role, current_batch_id)
				 VALUES ($1, $2, $3, (SELECT id FROM batches WHERE name = $4 AND is_active))
				 ON CONFLICT (email) DO NOTHING`,
				u.email, u.name, u.role, u.batch,
			)
			if err != nil {
				return err
			}
			continue
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO users (email, name, role) VALUES ($1, $2, $3)
			 ON CONFLICT (email) DO NOTHING`,
			u.email, u.name, u.role,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
