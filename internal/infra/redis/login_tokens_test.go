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

type LoginTokenStoreSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *goredis.Client
	store  *LoginTokenStore
}

func TestLoginTokenStoreSuite(t *testing.T) {
	suite.Run(t, new(LoginTokenStoreSuite))
}

func (s *LoginTokenStoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.store = NewLoginTokenStore(s.client)
}

func (s *LoginTokenStoreSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *LoginTokenStoreSuite) TestIssueAndConsume() {
	ctx := context.Background()

	token, err := s.store.Issue(ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Len(token, 64)

	s.Run("stored value is not the raw token", func() {
		stored, err := s.mini.Get(loginTokenPrefix + "ana@example.com")
		s.Require().NoError(err)
		s.NotEqual(token, stored)
	})

	s.Run("valid token consumes once", func() {
		ok, err := s.store.Consume(ctx, "ana@example.com", token)
		s.Require().NoError(err)
		s.True(ok)

		ok, err = s.store.Consume(ctx, "ana@example.com", token)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *LoginTokenStoreSuite) TestConsumeWrongTokenBurnsStored() {
	ctx := context.Background()

	token, err := s.store.Issue(ctx, "ana@example.com")
	s.Require().NoError(err)

	ok, err := s.store.Consume(ctx, "ana@example.com", "not-the-token")
	s.Require().NoError(err)
	s.False(ok)

	// The real token no longer works either.
	ok, err = s.store.Consume(ctx, "ana@example.com", token)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *LoginTokenStoreSuite) TestTokenExpires() {
	ctx := context.Background()

	token, err := s.store.Issue(ctx, "ana@example.com")
	s.Require().NoError(err)

	s.mini.FastForward(loginTokenTTL + time.Second)

	ok, err := s.store.Consume(ctx, "ana@example.com", token)
	s.Require().NoError(err)
	s.False(ok)
}
