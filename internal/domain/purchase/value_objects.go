package purchase

import (
	"errors"
	"strings"
)

var (
	ErrEmptyProductName = errors.New("product name is empty")
)

const (
	MaxProductNameLength   = 200
	MaxTransactionIDLength = 100
)

type ProductName struct {
	value string
}

// NewProductName validates the provider-reported product name. The name is
// free text controlled by the catalog owner; it is length-capped before
// storage but otherwise kept verbatim for auditability.
func NewProductName(s string) (ProductName, error) {
	if strings.TrimSpace(s) == "" {
		return ProductName{}, ErrEmptyProductName
	}
	if len(s) > MaxProductNameLength {
		s = s[:MaxProductNameLength]
	}
	return ProductName{value: s}, nil
}

func (n ProductName) Value() string {
	return n.value
}

type TransactionID struct {
	value string
}

// NewTransactionID wraps the provider transaction identifier. Absent or blank
// values yield the zero TransactionID, which is persisted as NULL and exempt
// from deduplication (manual grants may legitimately repeat).
func NewTransactionID(s string) TransactionID {
	s = strings.TrimSpace(s)
	if len(s) > MaxTransactionIDLength {
		s = s[:MaxTransactionIDLength]
	}
	return TransactionID{value: s}
}

func (t TransactionID) Value() string {
	return t.value
}

func (t TransactionID) IsZero() bool {
	return t.value == ""
}

func (t TransactionID) Ptr() *string {
	if t.value == "" {
		return nil
	}
	v := t.value
	return &v
}
