package db

import (
	"context"
	"fmt"

	"github.com/coachplanhq/coachplan/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type seedExercise struct {
	name        string
	equipment   string
	difficulty  string
	muscleGroup string
	category    string
}

var seedExercises = []seedExercise{
	{"Bodyweight Squat", "bodyweight", "beginner", "legs", "basic"},
	{"Push Up", "bodyweight", "beginner", "chest", "basic"},
	{"Barbell Squat", "barbell,rack", "intermediate", "legs", "strength"},
	{"Deadlift", "barbell", "advanced", "back", "strength"},
	{"Bench Press", "barbell,bench", "intermediate", "chest", "strength"},
	{"Burpees", "bodyweight", "intermediate", "full body", "cardio"},
	{"Jump Rope", "rope", "beginner", "full body", "cardio"},
}

// Seed inserts starter data for a fresh environment: a demo coach, a
// small exercise catalog and the default session. Every statement is
// guarded so repeated runs change nothing.
func Seed(ctx context.Context, pool *pgxpool.Pool, defaultSessionID int) error {
	demoPasswordHash, err := pkg.HashPassword("coachplan-demo")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var coachID int
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING user_id;
	`, "coach@coachplan.local", demoPasswordHash, "Demo Coach").Scan(&coachID)
	if err != nil {
		return fmt.Errorf("seed demo coach: %w", err)
	}

	for _, ex := range seedExercises {
		tag, err := pool.Exec(ctx, `
			INSERT INTO exercise_library (name, equipment, difficulty_level, muscle_group, category, created_by)
			SELECT $1, $2, $3, $4, $5, $6
			WHERE NOT EXISTS (
				SELECT 1 FROM exercise_library WHERE name = $1 AND is_deleted = FALSE
			);
		`, ex.name, ex.equipment, ex.difficulty, ex.muscleGroup, ex.category, coachID)
		if err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", ex.name, err)
		}
		if tag.RowsAffected() > 0 {
			log.Debugf("seeded catalog exercise: %s", ex.name)
		}
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO sessions (session_id, status, original_coach_id, actual_coach_id)
		VALUES ($1, 'scheduled', $2, $2)
		ON CONFLICT (session_id) DO NOTHING;
	`, defaultSessionID, coachID); err != nil {
		return fmt.Errorf("seed default session: %w", err)
	}

	log.Infof("seed done, demo coach id: %d", coachID)
	return nil
}
