package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coachplanhq/coachplan/internal/users"
	"github.com/coachplanhq/coachplan/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	exchangeKeyPrefix = "coachplan-auth-exchange||"

	// codes are one-shot and short-lived, just enough for the
	// frontend to pick them up after the OAuth redirect
	DefaultExchangeTTL = time.Minute
)

var ErrExchangeCodeNotFound = errors.New("exchange code not found")

// ExchangeStore keeps one-time login exchange codes in redis. The
// Google OAuth callback deposits the authenticated user here and
// redirects with only the opaque code, so tokens and user data never
// travel in a URL.
type ExchangeStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for codes (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewExchangeStore(ttl time.Duration, redisClient *redis.Client) *ExchangeStore {
	return &ExchangeStore{
		redisClient:    redisClient,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (es *ExchangeStore) Create(ctx context.Context, user users.PublicInfo) (string, error) {
	code, err := es.RandStringFunc(32)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal exchange payload: %w", err)
	}

	cmdSet := es.redisClient.Set(ctx, exchangeKeyPrefix+code, payload, es.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	return code, nil
}

func (es *ExchangeStore) Redeem(ctx context.Context, code string) (*users.PublicInfo, error) {
	exchangeKey := exchangeKeyPrefix + code

	cmdGet := es.redisClient.Get(ctx, exchangeKey)
	if err := cmdGet.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrExchangeCodeNotFound
		}
		return nil, err
	}

	// one-shot: remove the code before handing the payload out
	if err := es.redisClient.Del(ctx, exchangeKey).Err(); err != nil {
		return nil, err
	}

	var user users.PublicInfo
	if err := json.Unmarshal([]byte(cmdGet.Val()), &user); err != nil {
		return nil, fmt.Errorf("unmarshal exchange payload: %w", err)
	}

	return &user, nil
}
