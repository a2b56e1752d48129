package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachplanhq/coachplan/internal/telemetry/tracing"
	"github.com/coachplanhq/coachplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const userColumns = `user_id, google_id, email, password_hash, name, gender, birth, created_at, updated_at, last_login`

func (r *Repo) Create(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users (google_id, email, password_hash, name, gender, birth)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, created_at, updated_at;`,
		user.GoogleID, user.Email, user.PasswordHash, user.Name, user.Gender, user.Birth,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1;`,
		email,
	))
}

// GetByEmailOrGoogleID finds the user matching either identity, used
// when linking a Google login to an already registered account.
func (r *Repo) GetByEmailOrGoogleID(ctx context.Context, email, googleID string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmailOrGoogleID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 OR google_id = $2;`,
		email, googleID,
	))
}

func (r *Repo) SetGoogleID(ctx context.Context, userID int, googleID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setGoogleID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET google_id = $1, updated_at = now() WHERE user_id = $2;`,
		googleID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) UpdateLastLogin(ctx context.Context, userID int, lastLogin time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateLastLogin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET last_login = $1 WHERE user_id = $2;`,
		lastLogin, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) scanOne(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.GoogleID, &user.Email, &user.PasswordHash, &user.Name,
		&user.Gender, &user.Birth, &user.CreatedAt, &user.UpdatedAt, &user.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}
