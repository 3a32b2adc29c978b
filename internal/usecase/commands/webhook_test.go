//go:build unit

package commands

import (
	"context"
	"testing"

	"oficina-criativa/internal/domain/purchase"
	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/infra"

	"github.com/stretchr/testify/suite"
)

type stubPurchaseRepo struct {
	created     []*purchase.Purchase
	existing    map[string]bool
	createErr   error
	existsErr   error
	existsCalls int
}

func (s *stubPurchaseRepo) Create(_ context.Context, p *purchase.Purchase) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, p)
	return nil
}

func (s *stubPurchaseRepo) ExistsByTransactionID(_ context.Context, transactionID string) (bool, error) {
	s.existsCalls++
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.existing[transactionID], nil
}

type WebhookCommandsSuite struct {
	suite.Suite
	repo *stubPurchaseRepo
	cmds WebhookCommands
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsSuite))
}

func (s *WebhookCommandsSuite) SetupTest() {
	s.repo = &stubPurchaseRepo{existing: map[string]bool{}}
	s.cmds = NewWebhookCommands(s.repo)
}

func approvedDelivery(email, name, transaction string) reqdto.HotmartWebhookRequest {
	return reqdto.HotmartWebhookRequest{
		Event: "PURCHASE_APPROVED",
		Data: &reqdto.HotmartData{
			Buyer:    &reqdto.HotmartBuyer{Email: email},
			Product:  &reqdto.HotmartProduct{Name: name},
			Purchase: &reqdto.HotmartPurchase{Transaction: transaction},
		},
	}
}

func (s *WebhookCommandsSuite) TestRecordsApprovedPurchase() {
	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("Ana@Example.COM ", "Painel das Palavras", "TX1"))

	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, result.Outcome)
	s.Equal("ana@example.com", result.BuyerEmail)
	s.Equal("painel-das-palavras", result.ProductSlug)

	s.Require().Len(s.repo.created, 1)
	rec := s.repo.created[0]
	s.Equal("ana@example.com", rec.BuyerEmail().Value())
	s.Equal("painel-das-palavras", rec.ProductSlug())
	s.Equal("Painel das Palavras", rec.ProductName().Value())
	s.Equal("TX1", rec.TransactionID().Value())
	s.Equal(purchase.StatusApproved, rec.Status())
}

func (s *WebhookCommandsSuite) TestUnknownProductNameFallsBackToDerivedSlug() {
	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("ana@example.com", "Curso Extra de Pintura!", "TX2"))

	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, result.Outcome)
	s.Equal("curso-extra-de-pintura", result.ProductSlug)
}

func (s *WebhookCommandsSuite) TestTopLevelSchemaIsAccepted() {
	req := reqdto.HotmartWebhookRequest{
		Event:    "purchase.approved",
		Buyer:    &reqdto.HotmartBuyer{Email: "ana@example.com"},
		Product:  &reqdto.HotmartProduct{Name: "Painel das Palavras"},
		Purchase: &reqdto.HotmartPurchase{Transaction: "TX3"},
	}

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, result.Outcome)
}

func (s *WebhookCommandsSuite) TestTopLevelApprovedStatusCountsAsApproved() {
	req := approvedDelivery("ana@example.com", "Painel das Palavras", "TX4")
	req.Event = ""
	req.Data.Event = "PURCHASE_BILLET_PRINTED"
	req.Status = purchase.StatusApproved

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, result.Outcome)
}

func (s *WebhookCommandsSuite) TestNonApprovedEventIsIgnored() {
	req := approvedDelivery("ana@example.com", "Painel das Palavras", "TX5")
	req.Event = "PURCHASE_REFUNDED"

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(OutcomeIgnored, result.Outcome)
	s.Empty(s.repo.created)
	s.Zero(s.repo.existsCalls)
}

func (s *WebhookCommandsSuite) TestValidationRunsBeforeEventGate() {
	req := approvedDelivery("", "Painel das Palavras", "TX6")
	req.Event = "PURCHASE_REFUNDED"
	req.Data.Buyer = nil

	_, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().ErrorIs(err, ErrNoBuyerEmail)
}

func (s *WebhookCommandsSuite) TestMissingBuyerEmail() {
	req := approvedDelivery("", "Painel das Palavras", "TX7")
	req.Data.Buyer = nil

	_, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().ErrorIs(err, ErrNoBuyerEmail)
	s.Empty(s.repo.created)
}

func (s *WebhookCommandsSuite) TestMalformedBuyerEmail() {
	_, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("not-an-email", "Painel das Palavras", "TX8"))

	s.Require().ErrorIs(err, ErrInvalidBuyerEmail)
	s.Empty(s.repo.created)
}

func (s *WebhookCommandsSuite) TestMissingProductName() {
	req := approvedDelivery("ana@example.com", "", "TX9")
	req.Data.Product = nil

	_, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().ErrorIs(err, ErrNoProductName)
	s.Empty(s.repo.created)
}

func (s *WebhookCommandsSuite) TestKnownTransactionIDIsDuplicate() {
	s.repo.existing["TX1"] = true

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("ana@example.com", "Painel das Palavras", "TX1"))

	s.Require().NoError(err)
	s.Equal(OutcomeDuplicate, result.Outcome)
	s.Equal("ana@example.com", result.BuyerEmail)
	s.Empty(s.repo.created)
}

func (s *WebhookCommandsSuite) TestRacingInsertCollapsesToDuplicate() {
	s.repo.createErr = infra.WrapRepoErr("insert purchase", nil, infra.KindDuplicateKey)

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("ana@example.com", "Painel das Palavras", "TX1"))

	s.Require().NoError(err)
	s.Equal(OutcomeDuplicate, result.Outcome)
}

func (s *WebhookCommandsSuite) TestMissingTransactionIDSkipsDedup() {
	req := approvedDelivery("ana@example.com", "Painel das Palavras", "")
	req.Data.Purchase = nil

	result, err := s.cmds.ProcessHotmartDelivery(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, result.Outcome)
	s.Zero(s.repo.existsCalls)
	s.Require().Len(s.repo.created, 1)
	s.True(s.repo.created[0].TransactionID().IsZero())
}

func (s *WebhookCommandsSuite) TestRepeatedDeliveryRecordsOnce() {
	ctx := context.Background()
	req := approvedDelivery("Ana@Example.COM ", "Painel das Palavras", "TX1")

	first, err := s.cmds.ProcessHotmartDelivery(ctx, req)
	s.Require().NoError(err)
	s.Equal(OutcomeRecorded, first.Outcome)

	s.repo.existing["TX1"] = true

	second, err := s.cmds.ProcessHotmartDelivery(ctx, req)
	s.Require().NoError(err)
	s.Equal(OutcomeDuplicate, second.Outcome)
	s.Len(s.repo.created, 1)
}

func (s *WebhookCommandsSuite) TestInsertFailureSurfacesAsError() {
	s.repo.createErr = infra.WrapRepoErr("insert purchase", nil, infra.KindDBFailure)

	_, err := s.cmds.ProcessHotmartDelivery(context.Background(), approvedDelivery("ana@example.com", "Painel das Palavras", "TX1"))

	s.Require().ErrorIs(err, ErrPurchaseInsert)
}
