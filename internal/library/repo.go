package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const exerciseColumns = `exercise_id, name, equipment, description, difficulty_level, muscle_group, category, video_url, created_by, created_at, updated_at, is_deleted`

// List returns all live catalog entries, optionally filtered by exact
// category match. Soft-deleted rows are never returned.
func (r *Repo) List(ctx context.Context, category string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT ` + exerciseColumns + ` FROM exercise_library WHERE is_deleted = FALSE`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY exercise_id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(
			&ex.ID, &ex.Name, &ex.Equipment, &ex.Description, &ex.DifficultyLevel,
			&ex.MuscleGroup, &ex.Category, &ex.VideoURL, &ex.CreatedBy,
			&ex.CreatedAt, &ex.UpdatedAt, &ex.IsDeleted,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (r *Repo) Create(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_library
			(name, equipment, description, difficulty_level, muscle_group, category, video_url, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING exercise_id, created_at, updated_at;`,
		exercise.Name, exercise.Equipment, exercise.Description, exercise.DifficultyLevel,
		exercise.MuscleGroup, exercise.Category, exercise.VideoURL, exercise.CreatedBy,
	).Scan(&exercise.ID, &exercise.CreatedAt, &exercise.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

// Update applies a partial field merge to a live exercise owned by
// creatorID. A missing row and a row owned by someone else are both
// reported as ErrExerciseNotFound, ownership is never leaked.
func (r *Repo) Update(ctx context.Context, id, creatorID int, params UpdateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var ex Exercise
	err = r.db.QueryRow(
		ctx,
		`UPDATE exercise_library SET
			name = COALESCE($1, name),
			equipment = COALESCE($2, equipment),
			description = COALESCE($3, description),
			difficulty_level = COALESCE($4, difficulty_level),
			muscle_group = COALESCE($5, muscle_group),
			category = COALESCE($6, category),
			video_url = COALESCE($7, video_url),
			updated_at = now()
		WHERE exercise_id = $8 AND created_by = $9 AND is_deleted = FALSE
		RETURNING `+exerciseColumns+`;`,
		params.Name, params.Equipment, params.Description, params.DifficultyLevel,
		params.MuscleGroup, params.Category, params.VideoURL,
		id, creatorID,
	).Scan(
		&ex.ID, &ex.Name, &ex.Equipment, &ex.Description, &ex.DifficultyLevel,
		&ex.MuscleGroup, &ex.Category, &ex.VideoURL, &ex.CreatedBy,
		&ex.CreatedAt, &ex.UpdatedAt, &ex.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	return &ex, nil
}

func (r *Repo) SoftDelete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.library.softDelete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_library SET is_deleted = TRUE, updated_at = now()
			WHERE exercise_id = $1 AND is_deleted = FALSE;`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
