package commands

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"oficina-criativa/internal/pkg/clock"
	"oficina-criativa/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidNotification  = errs.New("title and message required")
	ErrPushNotConfigured    = errs.New("push delivery not configured")
	ErrNotificationDelivery = errs.New("push delivery failed")
)

type pushMessage struct {
	Title   string
	Message string
}

// Rotating campaign copy for the scheduled sends, split by time of day.
var morningMessages = []pushMessage{
	{Title: "☀️ Bom dia, professora!", Message: "Já viu as +5000 atividades prontas para imprimir? Poupe horas de trabalho hoje!"},
	{Title: "📚 Comece o dia com criatividade!", Message: "O Kit Completo da Alfabetização tem tudo para ensinar leitura de forma divertida."},
	{Title: "✨ Novidade na Oficina Criativa!", Message: "Moldes novos todos os meses para manter suas aulas sempre atualizadas."},
	{Title: "🎨 Atividades prontas te esperando!", Message: "Mais de 5000 moldes de EVA para imprimir e usar em atividades criativas."},
	{Title: "🏫 Prepare sua sala em 1 hora!", Message: "Kit Sala de Aula com murais, calendários e decoração prontos para imprimir."},
}

var eveningMessages = []pushMessage{
	{Title: "🌙 Prepare o dia de amanhã!", Message: "Com as +5000 Atividades, você tem material pronto para qualquer situação. Confira!"},
	{Title: "📖 Dica para amanhã!", Message: "Use o Painel das Palavras para ajudar seus alunos a lerem com facilidade."},
	{Title: "💡 Já organizou as atividades?", Message: "Palavras Escondidas transforma a leitura em brincadeira. As crianças adoram!"},
	{Title: "🎯 Planeje com antecedência!", Message: "O Kit de Alfabetização tem exercícios interativos perfeitos para o dia a dia."},
	{Title: "✏️ Materiais novos disponíveis!", Message: "Confira os moldes e atividades novas na Oficina Criativa."},
}

// PushSender broadcasts to every subscribed device.
type PushSender interface {
	SendToAll(ctx context.Context, title, message string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, id uuid.UUID, title, message string, sentBy uuid.UUID) error
}

type AutoSendResult struct {
	Sent    bool
	Skipped string
	Title   string
	Message string
}

type NotificationCommands interface {
	Send(ctx context.Context, title, message string, sentBy uuid.UUID) error
	SendScheduled(ctx context.Context) (*AutoSendResult, error)
}

type notificationCommandsImpl struct {
	sender           PushSender
	notificationRepo NotificationRepository
	clock            clock.Clock
	location         *time.Location
}

func NewNotificationCommands(sender PushSender, notificationRepo NotificationRepository, clk clock.Clock) NotificationCommands {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}
	return &notificationCommandsImpl{
		sender:           sender,
		notificationRepo: notificationRepo,
		clock:            clk,
		location:         loc,
	}
}

func (n *notificationCommandsImpl) Send(ctx context.Context, title, message string, sentBy uuid.UUID) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return ErrInvalidNotification
	}

	if err := n.sender.SendToAll(ctx, title, message); err != nil {
		if errors.Is(err, ErrPushNotConfigured) {
			return err
		}
		return errs.Mark(err, ErrNotificationDelivery)
	}

	if err := n.notificationRepo.Create(ctx, uuid.New(), title, message, sentBy); err != nil {
		// The push already went out; a failed audit row should not fail the call.
		slog.Warn("failed to record notification", "error", err.Error())
	}

	return nil
}

// SendScheduled picks a message from the morning or evening pool
// depending on the hour in Brazil, or skips outside those windows.
func (n *notificationCommandsImpl) SendScheduled(ctx context.Context) (*AutoSendResult, error) {
	hour := n.clock.Now().In(n.location).Hour()

	var pool []pushMessage
	switch {
	case hour >= 7 && hour < 12:
		pool = morningMessages
	case hour >= 18 && hour < 22:
		pool = eveningMessages
	default:
		return &AutoSendResult{Skipped: "outside notification hours"}, nil
	}

	pick := pool[rand.IntN(len(pool))]

	if err := n.sender.SendToAll(ctx, pick.Title, pick.Message); err != nil {
		if errors.Is(err, ErrPushNotConfigured) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrNotificationDelivery)
	}

	slog.Info("scheduled notification sent", "title", pick.Title)

	return &AutoSendResult{
		Sent:    true,
		Title:   pick.Title,
		Message: pick.Message,
	}, nil
}
