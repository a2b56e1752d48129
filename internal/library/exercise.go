package library

import "time"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	CategoryBasic    = "basic"
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
)

// Exercise is a reusable catalog entry, independent of any session.
// Rows are never hard-deleted, IsDeleted gates visibility in all reads.
type Exercise struct {
	ID              int       `json:"exercise_id"`
	Name            string    `json:"name"`
	Equipment       string    `json:"equipment"`
	Description     *string   `json:"description"`
	DifficultyLevel string    `json:"difficulty_level"`
	MuscleGroup     string    `json:"muscle_group"`
	Category        string    `json:"category"`
	VideoURL        *string   `json:"video_url"`
	CreatedBy       *int      `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	IsDeleted       bool      `json:"-"`
}

// UpdateParams carries a partial field merge for an exercise,
// nil fields are left untouched.
type UpdateParams struct {
	Name            *string
	Equipment       *string
	Description     *string
	DifficultyLevel *string
	MuscleGroup     *string
	Category        *string
	VideoURL        *string
}
