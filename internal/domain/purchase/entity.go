package purchase

import (
	"time"

	"oficina-criativa/internal/domain/user"

	"github.com/google/uuid"
)

const StatusApproved = "approved"

// Purchase is the durable record of an approved sale. Created by a validated
// webhook delivery or an admin manual grant; never mutated afterwards.
type Purchase struct {
	id            uuid.UUID
	buyerEmail    user.Email
	productSlug   string
	productName   ProductName
	transactionID TransactionID
	status        string
	createdAt     time.Time
}

func NewPurchase(buyerEmail user.Email, productSlug string, productName ProductName, transactionID TransactionID) *Purchase {
	return &Purchase{
		id:            uuid.New(),
		buyerEmail:    buyerEmail,
		productSlug:   productSlug,
		productName:   productName,
		transactionID: transactionID,
		status:        StatusApproved,
	}
}

func (p *Purchase) ID() uuid.UUID                { return p.id }
func (p *Purchase) BuyerEmail() user.Email       { return p.buyerEmail }
func (p *Purchase) ProductSlug() string          { return p.productSlug }
func (p *Purchase) ProductName() ProductName     { return p.productName }
func (p *Purchase) TransactionID() TransactionID { return p.transactionID }
func (p *Purchase) Status() string               { return p.status }
func (p *Purchase) CreatedAt() time.Time         { return p.createdAt }
