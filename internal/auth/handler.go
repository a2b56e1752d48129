package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/coachplanhq/coachplan/internal/apierr"
	"github.com/coachplanhq/coachplan/internal/telemetry/metrics"
	"github.com/coachplanhq/coachplan/internal/users"
	"github.com/coachplanhq/coachplan/internal/validate"
	"github.com/coachplanhq/coachplan/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, params RegisterParams) (*users.User, error)
	ValidateGoogleUser(ctx context.Context, email, name, googleID string) (*users.User, error)
	IssueToken(userID int, email string) (string, error)
}

type exchangeStore interface {
	Create(ctx context.Context, user users.PublicInfo) (string, error)
	Redeem(ctx context.Context, code string) (*users.PublicInfo, error)
}

type googleAuthenticator interface {
	AuthCodeURL(state string) string
	UserInfo(ctx context.Context, code string) (*GoogleUser, error)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Birth    *string `json:"birth" validate:"omitempty,datetime=2006-01-02"`
}

type exchangeRequest struct {
	Code string `json:"code" validate:"required"`
}

type registerResponse struct {
	Message string           `json:"message"`
	User    users.PublicInfo `json:"user"`
}

type Handler struct {
	service         authService
	exchange        exchangeStore
	google          googleAuthenticator
	validator       *validator.Validate
	metrics         *metrics.Manager
	frontendBaseURL string
}

type NewHandlerParams struct {
	Service         authService
	Exchange        exchangeStore
	Google          googleAuthenticator
	Validator       *validator.Validate
	Metrics         *metrics.Manager
	FrontendBaseURL string
}

func NewHandler(params NewHandlerParams) *Handler {
	return &Handler{
		service:         params.Service,
		exchange:        params.Exchange,
		google:          params.Google,
		validator:       params.Validator,
		metrics:         params.Metrics,
		frontendBaseURL: params.FrontendBaseURL,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	router.HandleFunc("/register", handler.handleRegister).Methods("POST", "OPTIONS").Name("register")
	router.HandleFunc("/exchange", handler.handleExchange).Methods("POST", "OPTIONS").Name("exchange")
	router.HandleFunc("/google", handler.handleGoogleLogin).Methods("GET").Name("google-login")
	router.HandleFunc("/google/callback", handler.handleGoogleCallback).Methods("GET").Name("google-callback")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	result, err := handler.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			apierr.Write(w, r, apierr.Unauthorized("wrong credentials"))
			return
		}
		log.Errorf("login: %s", err)
		apierr.Write(w, r, err)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal login result: %s", err)
		apierr.Write(w, r, err)
		return
	}

	handler.metrics.CounterLogins.Inc()
	pkg.WriteJSONResponseOK(w, string(resultJson))
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	var birth *time.Time
	if req.Birth != nil {
		parsed, err := time.Parse("2006-01-02", *req.Birth)
		if err != nil {
			apierr.Write(w, r, apierr.BadRequest("invalid birth date"))
			return
		}
		birth = &parsed
	}

	user, err := handler.service.Register(r.Context(), RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Gender:   req.Gender,
		Birth:    birth,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			apierr.Write(w, r, apierr.Conflict("email already registered"))
			return
		}
		log.Errorf("register: %s", err)
		apierr.Write(w, r, err)
		return
	}

	userJson, err := json.Marshal(registerResponse{
		Message: "user registered",
		User:    user.PublicInfo(),
	})
	if err != nil {
		log.Errorf("marshal registered user: %s", err)
		apierr.Write(w, r, err)
		return
	}

	handler.metrics.CounterRegistrations.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

// handleExchange trades a one-time code minted by the google callback
// for an access token. The code is consumed on first use.
func (handler *Handler) handleExchange(w http.ResponseWriter, r *http.Request) {
	var req exchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Write(w, r, apierr.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(handler.validator, req); err != nil {
		apierr.Write(w, r, err)
		return
	}

	userInfo, err := handler.exchange.Redeem(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, ErrExchangeCodeNotFound) {
			apierr.Write(w, r, apierr.Unauthorized("invalid or expired code"))
			return
		}
		log.Errorf("redeem exchange code: %s", err)
		apierr.Write(w, r, err)
		return
	}

	accessToken, err := handler.service.IssueToken(userInfo.ID, userInfo.Email)
	if err != nil {
		log.Errorf("issue token on exchange: %s", err)
		apierr.Write(w, r, err)
		return
	}

	resultJson, err := json.Marshal(LoginResult{
		AccessToken: accessToken,
		User:        *userInfo,
	})
	if err != nil {
		log.Errorf("marshal exchange result: %s", err)
		apierr.Write(w, r, err)
		return
	}

	handler.metrics.CounterLogins.Inc()
	pkg.WriteJSONResponseOK(w, string(resultJson))
}

func (handler *Handler) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := pkg.GenerateRandomString(16)
	if err != nil {
		log.Errorf("generate oauth state: %s", err)
		apierr.Write(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, handler.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (handler *Handler) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		log.Warnf("google callback with bad state from %s", r.RemoteAddr)
		handler.redirectLoginError(w, r)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		handler.redirectLoginError(w, r)
		return
	}

	googleUser, err := handler.google.UserInfo(r.Context(), code)
	if err != nil {
		log.Errorf("google user info: %s", err)
		handler.redirectLoginError(w, r)
		return
	}

	user, err := handler.service.ValidateGoogleUser(r.Context(), googleUser.Email, googleUser.Name, googleUser.ID)
	if err != nil {
		log.Errorf("validate google user: %s", err)
		handler.redirectLoginError(w, r)
		return
	}

	exchangeCode, err := handler.exchange.Create(r.Context(), user.PublicInfo())
	if err != nil {
		log.Errorf("create exchange code: %s", err)
		handler.redirectLoginError(w, r)
		return
	}

	redirectURL := fmt.Sprintf(
		"%s?code=%s&auth=google&state=%s&toast=google_login_success",
		handler.frontendBaseURL,
		url.QueryEscape(exchangeCode),
		url.QueryEscape(state),
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func (handler *Handler) redirectLoginError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, handler.frontendBaseURL+"/login?error=google_auth_failed", http.StatusTemporaryRedirect)
}
