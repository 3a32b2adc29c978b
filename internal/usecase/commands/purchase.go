package commands

import (
	"context"
	"log/slog"

	"oficina-criativa/internal/domain/purchase"
	"oficina-criativa/internal/domain/user"
	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPurchaseNotFound = errs.New("purchase not found")
	ErrInvalidGrant     = errs.New("invalid manual grant")
)

type GrantPurchaseParams struct {
	Email       string
	ProductSlug string
	ProductName string
}

type PurchaseAdminRepository interface {
	Create(ctx context.Context, p *purchase.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PurchaseCommands interface {
	// Grant manually records an approved purchase without a provider
	// transaction. Unlike webhook deliveries these are not deduplicated.
	Grant(ctx context.Context, params GrantPurchaseParams, grantedBy uuid.UUID) (uuid.UUID, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

type purchaseCommandsImpl struct {
	purchaseRepo PurchaseAdminRepository
}

func NewPurchaseCommands(purchaseRepo PurchaseAdminRepository) PurchaseCommands {
	return &purchaseCommandsImpl{
		purchaseRepo: purchaseRepo,
	}
}

func (p *purchaseCommandsImpl) Grant(ctx context.Context, params GrantPurchaseParams, grantedBy uuid.UUID) (uuid.UUID, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidGrant)
	}

	productName := params.ProductName
	if productName == "" {
		productName = params.ProductSlug
	}
	name, err := purchase.NewProductName(productName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidGrant)
	}
	if params.ProductSlug == "" {
		return uuid.Nil, ErrInvalidGrant
	}

	record := purchase.NewPurchase(email, params.ProductSlug, name, purchase.NewTransactionID(""))
	if err := p.purchaseRepo.Create(ctx, record); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperation)
	}

	slog.Info("manual purchase granted",
		"buyer_email", email.Value(),
		"product_slug", params.ProductSlug,
		"granted_by", grantedBy,
	)

	return record.ID(), nil
}

func (p *purchaseCommandsImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	if err := p.purchaseRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPurchaseNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}
