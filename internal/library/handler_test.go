package library_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachplanhq/coachplan/internal/auth"
	"github.com/coachplanhq/coachplan/internal/library"
	"github.com/coachplanhq/coachplan/internal/validate"
)

func newTestHandler(t *testing.T) (*mux.Router, *MocklibraryRepo) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklibraryRepo(ctrl)

	handler := library.NewHandler(repoMock, validate.New())
	router := mux.NewRouter()
	handler.SetupRoutes(router.PathPrefix("/api/exercisesLibrary").Subrouter())

	return router, repoMock
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	claims := &auth.Claims{
		Email: "coach@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "7",
		},
	}
	return req.WithContext(auth.ContextWithClaims(req.Context(), claims))
}

func randomExercise(category string) library.Exercise {
	return library.Exercise{
		ID:              gofakeit.Number(1, 1000),
		Name:            gofakeit.Word(),
		Equipment:       "bodyweight",
		DifficultyLevel: library.DifficultyBeginner,
		MuscleGroup:     "legs",
		Category:        category,
	}
}

func TestHandler_List(t *testing.T) {
	router, repoMock := newTestHandler(t)

	exercises := []library.Exercise{
		randomExercise(library.CategoryStrength),
		randomExercise(library.CategoryStrength),
	}
	repoMock.EXPECT().
		List(gomock.Any(), "strength").
		Return(exercises, nil)

	req := httptest.NewRequest("GET", "/api/exercisesLibrary?category=strength", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp library.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ExercisesLibrary, 2)
	assert.Equal(t, exercises[0].Name, resp.ExercisesLibrary[0].Name)
}

func TestHandler_List_SecondCallServedFromCache(t *testing.T) {
	router, repoMock := newTestHandler(t)

	exercises := []library.Exercise{randomExercise(library.CategoryCardio)}
	repoMock.EXPECT().
		List(gomock.Any(), "cardio").
		Return(exercises, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/exercisesLibrary?category=cardio", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHandler_Create(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ex library.Exercise) (*library.Exercise, error) {
			assert.Equal(t, "Squat", ex.Name)
			assert.Equal(t, "barbell", ex.Equipment)
			assert.Equal(t, library.CategoryStrength, ex.Category)
			require.NotNil(t, ex.CreatedBy)
			assert.Equal(t, 7, *ex.CreatedBy)
			created := ex
			created.ID = 1
			return &created, nil
		})

	req := authedRequest("POST", "/api/exercisesLibrary", `{
		"name": "Squat",
		"equipment": "barbell",
		"difficulty_level": "intermediate",
		"muscle_group": "legs",
		"category": "strength"
	}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created library.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
}

func TestHandler_Create_NoToken(t *testing.T) {
	router, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/exercisesLibrary", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Create_InvalidCategory(t *testing.T) {
	router, _ := newTestHandler(t)

	req := authedRequest("POST", "/api/exercisesLibrary", `{
		"name": "Squat",
		"equipment": "barbell",
		"difficulty_level": "intermediate",
		"muscle_group": "legs",
		"category": "crossfit"
	}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "category")
}

func TestHandler_Update(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		Update(gomock.Any(), 3, 7, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id, creatorID int, params library.UpdateParams) (*library.Exercise, error) {
			require.NotNil(t, params.Name)
			assert.Equal(t, "Front Squat", *params.Name)
			assert.Nil(t, params.Category)
			updated := randomExercise(library.CategoryStrength)
			updated.ID = id
			updated.Name = *params.Name
			return &updated, nil
		})

	req := authedRequest("PUT", "/api/exercisesLibrary/3", `{"name": "Front Squat"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated library.Exercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Front Squat", updated.Name)
}

func TestHandler_Update_NotOwned(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		Update(gomock.Any(), 3, 7, gomock.Any()).
		Return(nil, library.ErrExerciseNotFound)

	req := authedRequest("PUT", "/api/exercisesLibrary/3", `{"name": "Front Squat"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		SoftDelete(gomock.Any(), 3).
		Return(nil)

	req := authedRequest("DELETE", "/api/exercisesLibrary/3", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp library.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		SoftDelete(gomock.Any(), 99).
		Return(library.ErrExerciseNotFound)

	req := authedRequest("DELETE", "/api/exercisesLibrary/99", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete_SecondCallAfterCacheFlush(t *testing.T) {
	router, repoMock := newTestHandler(t)

	repoMock.EXPECT().
		List(gomock.Any(), "").
		Return([]library.Exercise{randomExercise(library.CategoryBasic)}, nil).
		Times(2)
	repoMock.EXPECT().
		SoftDelete(gomock.Any(), 1).
		Return(nil)

	// first list populates the cache
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/exercisesLibrary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// delete flushes it
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest("DELETE", "/api/exercisesLibrary/1", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	// so the next list hits the repo again
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/exercisesLibrary", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
