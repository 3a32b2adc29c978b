package commands

import (
	"context"
	"log/slog"

	"oficina-criativa/internal/domain/product"
	"oficina-criativa/internal/domain/purchase"
	"oficina-criativa/internal/domain/user"
	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/errs"
)

var (
	ErrNoBuyerEmail      = errs.New("no buyer email in payload")
	ErrInvalidBuyerEmail = errs.New("buyer email failed shape check")
	ErrNoProductName     = errs.New("no product name in payload")
	ErrPurchaseInsert    = errs.New("purchase insert failed")
)

type WebhookOutcome string

const (
	OutcomeRecorded  WebhookOutcome = "recorded"
	OutcomeIgnored   WebhookOutcome = "ignored"
	OutcomeDuplicate WebhookOutcome = "duplicate"
)

// approvedEvents lists every spelling Hotmart has used for a cleared
// purchase. A top-level status of "approved" is accepted as equivalent.
var approvedEvents = map[string]bool{
	"PURCHASE_APPROVED": true,
	"purchase.approved": true,
}

type WebhookResult struct {
	Outcome     WebhookOutcome
	BuyerEmail  string
	ProductSlug string
}

type PurchaseRepository interface {
	Create(ctx context.Context, p *purchase.Purchase) error
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
}

type WebhookCommands interface {
	ProcessHotmartDelivery(ctx context.Context, req reqdto.HotmartWebhookRequest) (*WebhookResult, error)
}

type webhookCommandsImpl struct {
	purchaseRepo PurchaseRepository
}

func NewWebhookCommands(purchaseRepo PurchaseRepository) WebhookCommands {
	return &webhookCommandsImpl{
		purchaseRepo: purchaseRepo,
	}
}

// ProcessHotmartDelivery turns one authenticated provider callback into at
// most one durable purchase. Validation precedes the event gate so malformed
// deliveries are rejected with a terminal status instead of inviting
// redelivery; non-approved events and replayed transaction ids are no-op
// successes. The partial unique index on transaction_id is the authoritative
// guard when redeliveries race the existence check.
func (w *webhookCommandsImpl) ProcessHotmartDelivery(ctx context.Context, req reqdto.HotmartWebhookRequest) (*WebhookResult, error) {
	event := req.EventType()

	rawEmail := req.BuyerEmail()
	if rawEmail == "" {
		return nil, ErrNoBuyerEmail
	}
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBuyerEmail)
	}

	rawName := req.ProductName()
	if rawName == "" {
		return nil, ErrNoProductName
	}
	name, err := purchase.NewProductName(rawName)
	if err != nil {
		return nil, errs.Mark(err, ErrNoProductName)
	}

	productSlug := product.SlugForName(name.Value())
	transactionID := purchase.NewTransactionID(req.TransactionID())

	if !approvedEvents[event] && req.Status != purchase.StatusApproved {
		slog.Info("ignoring webhook event", "event", event)
		return &WebhookResult{Outcome: OutcomeIgnored}, nil
	}

	if !transactionID.IsZero() {
		exists, err := w.purchaseRepo.ExistsByTransactionID(ctx, transactionID.Value())
		if err != nil {
			return nil, errs.Mark(err, ErrPurchaseInsert)
		}
		if exists {
			return &WebhookResult{Outcome: OutcomeDuplicate, BuyerEmail: email.Value(), ProductSlug: productSlug}, nil
		}
	}

	record := purchase.NewPurchase(email, productSlug, name, transactionID)
	if err := w.purchaseRepo.Create(ctx, record); err != nil {
		// A concurrent redelivery can win the insert between the existence
		// check and here; the unique index reports it as a duplicate key.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return &WebhookResult{Outcome: OutcomeDuplicate, BuyerEmail: email.Value(), ProductSlug: productSlug}, nil
		}
		return nil, errs.Mark(err, ErrPurchaseInsert)
	}

	slog.Info("purchase recorded", "buyer_email", email.Value(), "product_slug", productSlug)

	return &WebhookResult{Outcome: OutcomeRecorded, BuyerEmail: email.Value(), ProductSlug: productSlug}, nil
}
