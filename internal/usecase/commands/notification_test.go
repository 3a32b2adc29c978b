//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"oficina-criativa/internal/pkg/clock"
	"oficina-criativa/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubPushSender struct {
	sent    []pushMessage
	sendErr error
}

func (s *stubPushSender) SendToAll(_ context.Context, title, message string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, pushMessage{Title: title, Message: message})
	return nil
}

type stubNotificationRepo struct {
	recorded  []pushMessage
	createErr error
}

func (s *stubNotificationRepo) Create(_ context.Context, _ uuid.UUID, title, message string, _ uuid.UUID) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.recorded = append(s.recorded, pushMessage{Title: title, Message: message})
	return nil
}

type NotificationCommandsSuite struct {
	suite.Suite
	sender *stubPushSender
	repo   *stubNotificationRepo
	clk    *clock.MockClock
	cmds   NotificationCommands
}

func TestNotificationCommandsSuite(t *testing.T) {
	suite.Run(t, new(NotificationCommandsSuite))
}

func (s *NotificationCommandsSuite) SetupTest() {
	s.sender = &stubPushSender{}
	s.repo = &stubNotificationRepo{}
	s.clk = clock.NewMockClock(brTime(10))
	s.cmds = NewNotificationCommands(s.sender, s.repo, s.clk)
}

// São Paulo has been fixed at UTC-3 since 2019, so a fixed offset pins
// the local wall-clock hour exactly.
func brTime(hour int) time.Time {
	return time.Date(2026, time.March, 10, hour, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
}

func (s *NotificationCommandsSuite) TestSendBroadcastsAndRecords() {
	adminID := uuid.New()

	err := s.cmds.Send(context.Background(), "Novidade", "Moldes novos", adminID)
	s.Require().NoError(err)

	s.Require().Len(s.sender.sent, 1)
	s.Equal("Novidade", s.sender.sent[0].Title)
	s.Require().Len(s.repo.recorded, 1)
	s.Equal("Moldes novos", s.repo.recorded[0].Message)
}

func (s *NotificationCommandsSuite) TestSendRejectsBlankTitleOrMessage() {
	adminID := uuid.New()

	s.ErrorIs(s.cmds.Send(context.Background(), "   ", "m", adminID), ErrInvalidNotification)
	s.ErrorIs(s.cmds.Send(context.Background(), "t", "", adminID), ErrInvalidNotification)
	s.Empty(s.sender.sent)
}

func (s *NotificationCommandsSuite) TestSendToleratesAuditFailure() {
	s.repo.createErr = errs.New("insert failed")

	err := s.cmds.Send(context.Background(), "t", "m", uuid.New())
	s.NoError(err)
	s.Len(s.sender.sent, 1)
}

func (s *NotificationCommandsSuite) TestScheduledWindowBoundaries() {
	cases := []struct {
		hour int
		pool []pushMessage
	}{
		{hour: 6, pool: nil},
		{hour: 7, pool: morningMessages},
		{hour: 11, pool: morningMessages},
		{hour: 12, pool: nil},
		{hour: 17, pool: nil},
		{hour: 18, pool: eveningMessages},
		{hour: 21, pool: eveningMessages},
		{hour: 22, pool: nil},
	}

	for _, tc := range cases {
		s.SetupTest()
		s.clk.Set(brTime(tc.hour))

		result, err := s.cmds.SendScheduled(context.Background())
		s.Require().NoError(err, "hour %d", tc.hour)

		if tc.pool == nil {
			s.False(result.Sent, "hour %d", tc.hour)
			s.Equal("outside notification hours", result.Skipped, "hour %d", tc.hour)
			s.Empty(s.sender.sent, "hour %d", tc.hour)
			continue
		}

		s.True(result.Sent, "hour %d", tc.hour)
		s.Require().Len(s.sender.sent, 1, "hour %d", tc.hour)
		s.Contains(tc.pool, s.sender.sent[0], "hour %d", tc.hour)
		s.Equal(s.sender.sent[0].Title, result.Title, "hour %d", tc.hour)
	}
}

func (s *NotificationCommandsSuite) TestScheduledHonorsUTCOffset() {
	// 13:30 UTC is 10:30 in São Paulo, inside the morning window.
	s.clk.Set(time.Date(2026, time.March, 10, 13, 30, 0, 0, time.UTC))

	result, err := s.cmds.SendScheduled(context.Background())
	s.Require().NoError(err)
	s.True(result.Sent)
	s.Contains(morningMessages, s.sender.sent[0])
}

func (s *NotificationCommandsSuite) TestScheduledNotConfiguredPassesThrough() {
	s.sender.sendErr = ErrPushNotConfigured

	result, err := s.cmds.SendScheduled(context.Background())
	s.Nil(result)
	s.ErrorIs(err, ErrPushNotConfigured)
}

func (s *NotificationCommandsSuite) TestScheduledDeliveryFailureIsMarked() {
	s.sender.sendErr = errs.New("onesignal returned 500")

	result, err := s.cmds.SendScheduled(context.Background())
	s.Nil(result)
	s.ErrorIs(err, ErrNotificationDelivery)
}
