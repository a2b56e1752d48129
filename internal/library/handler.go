package library

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/coachplanhq/coachplan/internal/apierr"
	"github.com/coachplanhq/coachplan/internal/auth"
	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"
	"github.com/coachplanhq/coachplan/internal/validate"
	"github.com/coachplanhq/coachplan/pkg"

	"github.com/coocood/freecache"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=library_test

const (
	listCacheExpireSeconds = 60
	listCacheKeyPrefix     = "exercises-list||"
)

type libraryRepo interface {
	List(ctx context.Context, category string) ([]Exercise, error)
	Create(ctx context.Context, exercise Exercise) (*Exercise, error)
	Update(ctx context.Context, id, creatorID int, params UpdateParams) (*Exercise, error)
	SoftDelete(ctx context.Context, id int) error
}

type ListResponse struct {
	ExercisesLibrary []Exercise `json:"exercisesLibrary"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type createExerciseRequest struct {
	Name            string  `json:"name" validate:"required"`
	Equipment       string  `json:"equipment" validate:"required"`
	Description     *string `json:"description"`
	DifficultyLevel string  `json:"difficulty_level" validate:"required,oneof=beginner intermediate advanced"`
	MuscleGroup     string  `json:"muscle_group" validate:"required"`
	Category        string  `json:"category" validate:"required,oneof=basic strength cardio"`
	VideoURL        *string `json:"video_url"`
}

type updateExerciseRequest struct {
	Name            *string `json:"name"`
	Equipment       *string `json:"equipment"`
	Description     *string `json:"description"`
	DifficultyLevel *string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	MuscleGroup     *string `json:"muscle_group"`
	Category        *string `json:"category" validate:"omitempty,oneof=basic strength cardio"`
	VideoURL        *string `json:"video_url"`
}

type Handler struct {
	repo      libraryRepo
	validator *validator.Validate
	listCache *freecache.Cache
}

func NewHandler(repo libraryRepo, validator *validator.Validate) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:      repo,
		validator: validator,
		listCache: freecache.NewCache(megabyte),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("list-exercises")
	router.HandleFunc("", handler.handleCreate).Methods("POST", "OPTIONS").Name("create-exercise")
	router.HandleFunc("/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	router.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.list")
	defer span.End()

	category := r.URL.Query().Get("category")
	cacheKey := []byte(listCacheKeyPrefix + category)

	if cachedList, err := handler.listCache.Get(cacheKey); err == nil {
		log.Tracef("exercises list for category [%s] served from cache", category)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cachedList)
		return
	}

	exercises, err := handler.repo.List(ctx, category)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		apierr.Write(w, r, err)
		return
	}

	respBytes, err := json.Marshal(ListResponse{ExercisesLibrary: exercises})
	if err != nil {
		log.Errorf("marshal exercises list: %s", err)
		apierr.Write(w, r, err)
		return
	}

	if err := handler.listCache.Set(cacheKey, respBytes, listCacheExpireSeconds); err != nil {
		log.Errorf("cache exercises list for category [%s]: %s", category, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.create")
	defer span.End()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		apierr.Write(w, r, apierr.Unauthorized("no token"))
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		apierr.Write(w, r, apierr.Unauthorized("invalid token subject"))
		return
	}

	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	exercise, err := handler.repo.Create(ctx, Exercise{
		Name:            req.Name,
		Equipment:       req.Equipment,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		MuscleGroup:     req.MuscleGroup,
		Category:        req.Category,
		VideoURL:        req.VideoURL,
		CreatedBy:       &userID,
	})
	if err != nil {
		log.Errorf("create exercise: %s", err)
		apierr.Write(w, r, err)
		return
	}

	handler.listCache.Clear()

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal created exercise: %s", err)
		apierr.Write(w, r, err)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.update")
	defer span.End()

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		apierr.Write(w, r, apierr.Unauthorized("no token"))
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		apierr.Write(w, r, apierr.Unauthorized("invalid token subject"))
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid exercise id"))
		return
	}

	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	exercise, err := handler.repo.Update(ctx, id, userID, UpdateParams{
		Name:            req.Name,
		Equipment:       req.Equipment,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		MuscleGroup:     req.MuscleGroup,
		Category:        req.Category,
		VideoURL:        req.VideoURL,
	})
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			apierr.Write(w, r, apierr.NotFound("exercise not found"))
			return
		}
		log.Errorf("update exercise %d: %s", id, err)
		apierr.Write(w, r, err)
		return
	}

	handler.listCache.Clear()

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("marshal updated exercise: %s", err)
		apierr.Write(w, r, err)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, exerciseJson)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.delete")
	defer span.End()

	if _, ok := auth.ClaimsFromContext(ctx); !ok {
		apierr.Write(w, r, apierr.Unauthorized("no token"))
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid exercise id"))
		return
	}

	if err := handler.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			apierr.Write(w, r, apierr.NotFound("exercise not found"))
			return
		}
		log.Errorf("delete exercise %d: %s", id, err)
		apierr.Write(w, r, err)
		return
	}

	handler.listCache.Clear()

	respBytes, err := json.Marshal(DeleteResponse{Success: true})
	if err != nil {
		log.Errorf("marshal delete response: %s", err)
		apierr.Write(w, r, err)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
