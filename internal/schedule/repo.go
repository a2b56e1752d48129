package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coachplanhq/coachplan/internal/library"
	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListDetails reads all assignments with their catalog entry and sets
// eagerly attached, ordered by assignment order then set order.
// Assignments pointing at soft-deleted or missing catalog entries come
// back with a nil Exercise, the aggregator drops those.
func (r *Repo) ListDetails(ctx context.Context) (_ []AssignmentDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listDetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
			se.id, se.session_id, se.exercise_id, se."order", se.created_at, se.updated_at,
			el.exercise_id, el.name, el.equipment, el.description, el.difficulty_level,
			el.muscle_group, el.category, el.video_url, el.created_by,
			el.created_at, el.updated_at, el.is_deleted
		FROM session_exercises se
		LEFT JOIN exercise_library el
			ON el.exercise_id = se.exercise_id AND el.is_deleted = FALSE
		ORDER BY se."order", se.id;
	`)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	details := make([]AssignmentDetails, 0)
	assignmentIDs := make([]int, 0)
	detailsIndex := map[int]int{}
	for rows.Next() {
		var d AssignmentDetails
		var ex library.Exercise
		var exID *int
		var exName, exEquipment, exDifficulty, exMuscleGroup, exCategory *string
		var exCreatedAt, exUpdatedAt *time.Time
		var exIsDeleted *bool
		err := rows.Scan(
			&d.ID, &d.SessionID, &d.ExerciseID, &d.Order, &d.CreatedAt, &d.UpdatedAt,
			&exID, &exName, &exEquipment, &ex.Description, &exDifficulty,
			&exMuscleGroup, &exCategory, &ex.VideoURL, &ex.CreatedBy,
			&exCreatedAt, &exUpdatedAt, &exIsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}

		if exID != nil {
			ex.ID = *exID
			ex.Name = *exName
			ex.Equipment = *exEquipment
			ex.DifficultyLevel = *exDifficulty
			ex.MuscleGroup = *exMuscleGroup
			ex.Category = *exCategory
			ex.CreatedAt = *exCreatedAt
			ex.UpdatedAt = *exUpdatedAt
			ex.IsDeleted = *exIsDeleted
			d.Exercise = &ex
		}

		d.Sets = make([]Set, 0)
		detailsIndex[d.ID] = len(details)
		details = append(details, d)
		assignmentIDs = append(assignmentIDs, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if len(details) == 0 {
		return details, nil
	}

	setRows, err := r.db.Query(ctx, `
		SELECT id, session_exercise_id, weight, reps, duration, fatigue, "order"
		FROM exercise_sets
		WHERE session_exercise_id = ANY($1)
		ORDER BY "order", id;
	`, assignmentIDs)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var s Set
		var parentID int
		if err := setRows.Scan(&s.ID, &parentID, &s.Weight, &s.Reps, &s.Duration, &s.Fatigue, &s.Order); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		if idx, ok := detailsIndex[parentID]; ok {
			details[idx].Sets = append(details[idx].Sets, s)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("set rows: %w", err)
	}

	span.SetAttributes(attribute.Int("assignments.count", len(details)))
	return details, nil
}

// SaveSchedule atomically rewrites assignment order indices from the
// submitted section lists and fully replaces each touched assignment's
// sets. Unknown or non-numeric assignment ids are skipped silently,
// the client payload is allowed to be stale.
func (r *Repo) SaveSchedule(ctx context.Context, sections []SectionSubmission) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.saveSchedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = saveSections(ctx, tx, sections)
	return err
}

// scheduleWriter is the slice of pgx.Tx the save loop needs.
type scheduleWriter interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

func saveSections(ctx context.Context, tx scheduleWriter, sections []SectionSubmission) error {
	for _, section := range sections {
		for index, exercise := range section.Exercises {
			assignmentID, convErr := strconv.Atoi(exercise.ID)
			if convErr != nil {
				continue
			}

			tag, err := tx.Exec(ctx, `
				UPDATE session_exercises SET "order" = $1, updated_at = now()
				WHERE id = $2;
			`, index, assignmentID)
			if err != nil {
				return fmt.Errorf("update assignment %d order: %w", assignmentID, err)
			}
			if tag.RowsAffected() == 0 {
				// stale id in the payload, tolerated
				continue
			}

			if _, err := tx.Exec(ctx, `
				DELETE FROM exercise_sets WHERE session_exercise_id = $1;
			`, assignmentID); err != nil {
				return fmt.Errorf("delete sets of assignment %d: %w", assignmentID, err)
			}

			if len(exercise.SetsData) == 0 {
				continue
			}

			insertQuery, insertArgs := buildSetsInsert(assignmentID, exercise.SetsData)
			if _, err := tx.Exec(ctx, insertQuery, insertArgs...); err != nil {
				return fmt.Errorf("insert sets of assignment %d: %w", assignmentID, err)
			}
		}
	}

	return nil
}

// buildSetsInsert renders one multi-row insert for all submitted sets
// of an assignment, with order = position in the submitted list.
func buildSetsInsert(assignmentID int, sets []SetSubmission) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO exercise_sets (session_exercise_id, weight, reps, duration, fatigue, "order") VALUES `)

	args := make([]interface{}, 0, len(sets)*6)
	for i, s := range sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		sb.WriteString(fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, assignmentID, s.Weight, s.Reps, s.Duration, s.Fatigue, i)
	}
	sb.WriteString(";")

	return sb.String(), args
}

// NextOrderForCategory computes the next free order index among
// assignments whose catalog entry has the given category.
func (r *Repo) NextOrderForCategory(ctx context.Context, category string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.nextOrderForCategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var nextOrder int
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(se."order"), -1) + 1
		FROM session_exercises se
		JOIN exercise_library el ON el.exercise_id = se.exercise_id
		WHERE el.category = $1;
	`, category).Scan(&nextOrder)
	if err != nil {
		return 0, fmt.Errorf("query max order: %w", err)
	}

	return nextOrder, nil
}

func (r *Repo) AddAssignment(ctx context.Context, sessionID, exerciseID, order int) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.addAssignment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	assignment := Assignment{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Order:      order,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO session_exercises (session_id, exercise_id, "order")
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`, sessionID, exerciseID, order).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	span.SetAttributes(attribute.Int("assignment.id", assignment.ID))
	return &assignment, nil
}

// DeleteAssignment removes an assignment and its sets in one
// transaction. Deleting an already removed assignment is not an error.
func (r *Repo) DeleteAssignment(ctx context.Context, assignmentID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.deleteAssignment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("assignment.id", assignmentID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM exercise_sets WHERE session_exercise_id = $1;
	`, assignmentID); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM session_exercises WHERE id = $1;
	`, assignmentID); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	return nil
}
