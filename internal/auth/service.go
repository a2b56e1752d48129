package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"
	"github.com/coachplanhq/coachplan/internal/users"
	"github.com/coachplanhq/coachplan/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

var ErrWrongCredentials = errors.New("wrong credentials")

type usersRepo interface {
	Create(ctx context.Context, user users.User) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
	GetByEmailOrGoogleID(ctx context.Context, email, googleID string) (*users.User, error)
	SetGoogleID(ctx context.Context, userID int, googleID string) error
	UpdateLastLogin(ctx context.Context, userID int, lastLogin time.Time) error
}

type LoginResult struct {
	AccessToken string           `json:"access_token"`
	User        users.PublicInfo `json:"user"`
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Gender   *string
	Birth    *time.Time
}

type Service struct {
	users  usersRepo
	tokens *TokenIssuer
}

func NewService(usersRepo usersRepo, tokens *TokenIssuer) *Service {
	return &Service{
		users:  usersRepo,
		tokens: tokens,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (_ *LoginResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	// google-only accounts have no password set
	if user.PasswordHash == nil || !pkg.CheckPasswordHash(password, *user.PasswordHash) {
		log.Tracef("failed login attempt for: %s", email)
		return nil, ErrWrongCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// not worth failing the login over
		log.Errorf("update last login for user %d: %s", user.ID, err)
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		AccessToken: accessToken,
		User:        user.PublicInfo(),
	}, nil
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (_ *users.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, users.User{
		Email:        params.Email,
		PasswordHash: &passwordHash,
		Name:         params.Name,
		Gender:       params.Gender,
		Birth:        params.Birth,
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("registered new user %d [%s]", user.ID, user.Email)
	return user, nil
}

// ValidateGoogleUser finds the account matching a Google login, creating
// it on first login and backfilling the google id on accounts that
// registered with a password first.
func (s *Service) ValidateGoogleUser(ctx context.Context, email, name, googleID string) (_ *users.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.service.validateGoogleUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByEmailOrGoogleID(ctx, email, googleID)
	if err != nil {
		if !errors.Is(err, users.ErrUserNotFound) {
			return nil, fmt.Errorf("get user: %w", err)
		}

		user, err = s.users.Create(ctx, users.User{
			Email:    email,
			Name:     name,
			GoogleID: &googleID,
		})
		if err != nil {
			return nil, fmt.Errorf("create user from google login: %w", err)
		}
		log.Debugf("created new user %d from google login", user.ID)
		return user, nil
	}

	if user.GoogleID == nil {
		if err := s.users.SetGoogleID(ctx, user.ID, googleID); err != nil {
			return nil, fmt.Errorf("link google id: %w", err)
		}
		user.GoogleID = &googleID
	}

	return user, nil
}

// IssueToken signs an access token for an already validated user.
func (s *Service) IssueToken(userID int, email string) (string, error) {
	return s.tokens.Issue(userID, email)
}
