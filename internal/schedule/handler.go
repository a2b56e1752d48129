package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coachplanhq/coachplan/internal/apierr"
	"github.com/coachplanhq/coachplan/internal/telemetry/metrics"
	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"
	"github.com/coachplanhq/coachplan/internal/validate"
	"github.com/coachplanhq/coachplan/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type scheduleRepo interface {
	ListDetails(ctx context.Context) ([]AssignmentDetails, error)
	SaveSchedule(ctx context.Context, sections []SectionSubmission) error
	NextOrderForCategory(ctx context.Context, category string) (int, error)
	AddAssignment(ctx context.Context, sessionID, exerciseID, order int) (*Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID int) error
}

type saveScheduleRequest struct {
	Sections []SectionSubmission `json:"sections" validate:"required"`
}

type addExerciseRequest struct {
	ExerciseID int `json:"exercise_id" validate:"required"`
}

type Handler struct {
	repo             scheduleRepo
	validator        *validator.Validate
	metrics          *metrics.Manager
	defaultSessionID int
}

type NewHandlerParams struct {
	Repo             scheduleRepo
	Validator        *validator.Validate
	Metrics          *metrics.Manager
	DefaultSessionID int
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		repo:             params.Repo,
		validator:        params.Validator,
		metrics:          params.Metrics,
		defaultSessionID: params.DefaultSessionID,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.handleGetSchedule).Methods("GET", "OPTIONS").Name("get-schedule")
	router.HandleFunc("", handler.handleSaveSchedule).Methods("PUT", "OPTIONS").Name("save-schedule")
	router.HandleFunc("/sections/{sectionId}/exercises", handler.handleAddExercise).Methods("POST", "OPTIONS").Name("add-schedule-exercise")
	router.HandleFunc("/exercises/{exerciseId}", handler.handleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-schedule-exercise")
}

func (handler *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.get")
	defer span.End()

	handler.writeSchedule(ctx, w, r)
}

// handleSaveSchedule persists a full reorder+resave and responds with
// the freshly recomputed schedule, never echoing the submitted shape.
func (handler *Handler) handleSaveSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.save")
	defer span.End()

	var req saveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	if err := handler.repo.SaveSchedule(ctx, req.Sections); err != nil {
		log.Errorf("save schedule: %s", err)
		apierr.Write(w, r, err)
		return
	}

	handler.metrics.CounterScheduleSaves.Inc()
	handler.writeSchedule(ctx, w, r)
}

func (handler *Handler) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.addExercise")
	defer span.End()

	sectionID := mux.Vars(r)["sectionId"]

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	details, err := handler.repo.ListDetails(ctx)
	if err != nil {
		log.Errorf("list assignments for add: %s", err)
		apierr.Write(w, r, err)
		return
	}

	category := CategoryForSectionID(sectionID, details)
	nextOrder, err := handler.repo.NextOrderForCategory(ctx, category)
	if err != nil {
		log.Errorf("next order for category [%s]: %s", category, err)
		apierr.Write(w, r, err)
		return
	}

	if _, err := handler.repo.AddAssignment(ctx, handler.defaultSessionID, req.ExerciseID, nextOrder); err != nil {
		log.Errorf("add assignment for exercise %d: %s", req.ExerciseID, err)
		apierr.Write(w, r, err)
		return
	}

	handler.writeSchedule(ctx, w, r)
}

func (handler *Handler) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.deleteExercise")
	defer span.End()

	assignmentID, err := strconv.Atoi(mux.Vars(r)["exerciseId"])
	if err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid exercise id"))
		return
	}

	if err := handler.repo.DeleteAssignment(ctx, assignmentID); err != nil {
		log.Errorf("delete assignment %d: %s", assignmentID, err)
		apierr.Write(w, r, err)
		return
	}

	handler.writeSchedule(ctx, w, r)
}

func (handler *Handler) writeSchedule(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	details, err := handler.repo.ListDetails(ctx)
	if err != nil {
		log.Errorf("list assignment details: %s", err)
		apierr.Write(w, r, err)
		return
	}

	sections := BuildSections(details)
	sectionsJson, err := json.Marshal(sections)
	if err != nil {
		log.Errorf("marshal schedule: %s", err)
		apierr.Write(w, r, err)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sectionsJson)
}
