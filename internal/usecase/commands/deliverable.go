package commands

import (
	"context"
	"strings"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDeliverableNotFound = errs.New("deliverable not found")
	ErrInvalidDeliverable  = errs.New("invalid deliverable")
)

type CreateDeliverableParams struct {
	ProductSlug string
	Label       string
	FileURL     string
	SortOrder   int32
}

type DeliverableRepository interface {
	Create(ctx context.Context, id uuid.UUID, params CreateDeliverableParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeliverableCommands interface {
	Create(ctx context.Context, params CreateDeliverableParams) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type deliverableCommandsImpl struct {
	deliverableRepo DeliverableRepository
}

func NewDeliverableCommands(deliverableRepo DeliverableRepository) DeliverableCommands {
	return &deliverableCommandsImpl{
		deliverableRepo: deliverableRepo,
	}
}

func (d *deliverableCommandsImpl) Create(ctx context.Context, params CreateDeliverableParams) (uuid.UUID, error) {
	if strings.TrimSpace(params.ProductSlug) == "" ||
		strings.TrimSpace(params.Label) == "" ||
		strings.TrimSpace(params.FileURL) == "" {
		return uuid.Nil, ErrInvalidDeliverable
	}

	id := uuid.New()
	if err := d.deliverableRepo.Create(ctx, id, params); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return id, nil
}

func (d *deliverableCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.deliverableRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDeliverableNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
