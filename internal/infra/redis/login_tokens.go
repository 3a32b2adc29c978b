package redis

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"oficina-criativa/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	loginTokenPrefix = "login_token:"
	loginTokenTTL    = 15 * time.Minute
	loginTokenBytes  = 32
)

// LoginTokenStore keeps one-shot magic-link tokens. Only the sha256 of
// the token is stored, so a leaked Redis dump cannot be replayed.
type LoginTokenStore struct {
	client *redis.Client
}

func NewLoginTokenStore(client *redis.Client) *LoginTokenStore {
	return &LoginTokenStore{client: client}
}

func (s *LoginTokenStore) Issue(ctx context.Context, email string) (string, error) {
	raw := make([]byte, loginTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errs.Wrap(err, "failed to generate login token")
	}
	token := hex.EncodeToString(raw)

	if err := s.client.Set(ctx, loginTokenPrefix+email, hashToken(token), loginTokenTTL).Err(); err != nil {
		return "", errs.Wrap(err, "failed to store login token")
	}
	return token, nil
}

// Consume deletes the stored token before comparing, so a token can
// never be tried twice even when the comparison fails.
func (s *LoginTokenStore) Consume(ctx context.Context, email, token string) (bool, error) {
	stored, err := s.client.GetDel(ctx, loginTokenPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to load login token")
	}

	match := subtle.ConstantTimeCompare([]byte(stored), []byte(hashToken(token))) == 1
	return match, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
