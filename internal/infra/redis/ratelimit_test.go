//go:build unit

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type LoginRateLimiterSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	client  *goredis.Client
	limiter *LoginRateLimiter
}

func TestLoginRateLimiterSuite(t *testing.T) {
	suite.Run(t, new(LoginRateLimiterSuite))
}

func (s *LoginRateLimiterSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.limiter = NewLoginRateLimiter(s.client)
}

func (s *LoginRateLimiterSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *LoginRateLimiterSuite) TestAllowsUpToLimit() {
	ctx := context.Background()

	for i := 0; i < loginRateLimitMax; i++ {
		ok, err := s.limiter.Allow(ctx, "ana@example.com")
		s.Require().NoError(err)
		s.True(ok, "request %d should be allowed", i+1)
	}

	ok, err := s.limiter.Allow(ctx, "ana@example.com")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *LoginRateLimiterSuite) TestLimitIsPerEmail() {
	ctx := context.Background()

	for i := 0; i < loginRateLimitMax+1; i++ {
		_, err := s.limiter.Allow(ctx, "ana@example.com")
		s.Require().NoError(err)
	}

	ok, err := s.limiter.Allow(ctx, "outra@example.com")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *LoginRateLimiterSuite) TestWindowResets() {
	ctx := context.Background()

	for i := 0; i < loginRateLimitMax+1; i++ {
		_, err := s.limiter.Allow(ctx, "ana@example.com")
		s.Require().NoError(err)
	}

	s.mini.FastForward(loginRateLimitWindow + time.Second)

	ok, err := s.limiter.Allow(ctx, "ana@example.com")
	s.Require().NoError(err)
	s.True(ok)
}
