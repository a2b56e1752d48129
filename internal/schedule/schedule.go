package schedule

import (
	"time"

	"github.com/coachplanhq/coachplan/internal/library"
)

// Assignment places one catalog exercise into a coaching session, with
// a display order within its section.
type Assignment struct {
	ID         int       `json:"id"`
	SessionID  int       `json:"session_id"`
	ExerciseID int       `json:"exercise_id"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Set is one performance set row belonging to an assignment. Weight,
// reps, duration and fatigue are free-form text, stored exactly as
// submitted.
type Set struct {
	ID       int     `json:"id"`
	Weight   *string `json:"weight"`
	Reps     *string `json:"reps"`
	Duration *string `json:"duration"`
	Fatigue  *string `json:"fatigue"`
	Order    int     `json:"order"`
}

// AssignmentDetails is the read model for the aggregator: an
// assignment with its catalog entry and sets eagerly attached.
// Exercise is nil when the catalog entry is soft-deleted or gone.
type AssignmentDetails struct {
	Assignment
	Exercise *library.Exercise
	Sets     []Set
}

// Section is the derived view-model grouping of assignments by
// category. Never persisted, recomputed on every read.
type Section struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Exercises []ExerciseView `json:"exercises"`
}

type ExerciseView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Equipment []string  `json:"equipment"`
	SetsData  []SetView `json:"setsData"`
}

// SetView keys weight/reps/duration as optional so the zero-sets
// placeholder can carry only an id and an empty fatigue.
type SetView struct {
	ID       string  `json:"id"`
	Weight   *string `json:"weight,omitempty"`
	Reps     *string `json:"reps,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Fatigue  string  `json:"fatigue"`
}

// SectionSubmission is the client payload for a full reorder+resave.
type SectionSubmission struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Exercises []ExerciseSubmission `json:"exercises"`
}

type ExerciseSubmission struct {
	ID       string          `json:"id"`
	Order    int             `json:"order"`
	SetsData []SetSubmission `json:"setsData"`
}

type SetSubmission struct {
	ID       string `json:"id"`
	Weight   string `json:"weight"`
	Reps     string `json:"reps"`
	Duration string `json:"duration"`
	Fatigue  string `json:"fatigue"`
}
