//go:build unit

package purchase_test

import (
	"strings"
	"testing"

	"oficina-criativa/internal/domain/purchase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductName(t *testing.T) {
	t.Run("keeps name verbatim", func(t *testing.T) {
		n, err := purchase.NewProductName("+5000 Atividades")
		require.NoError(t, err)
		assert.Equal(t, "+5000 Atividades", n.Value())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := purchase.NewProductName("")
		assert.ErrorIs(t, err, purchase.ErrEmptyProductName)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := purchase.NewProductName("   ")
		assert.ErrorIs(t, err, purchase.ErrEmptyProductName)
	})

	t.Run("truncates to max length", func(t *testing.T) {
		n, err := purchase.NewProductName(strings.Repeat("x", purchase.MaxProductNameLength+50))
		require.NoError(t, err)
		assert.Len(t, n.Value(), purchase.MaxProductNameLength)
	})
}

func TestNewTransactionID(t *testing.T) {
	t.Run("blank is zero", func(t *testing.T) {
		assert.True(t, purchase.NewTransactionID("").IsZero())
		assert.True(t, purchase.NewTransactionID("  ").IsZero())
		assert.Nil(t, purchase.NewTransactionID("").Ptr())
	})

	t.Run("present value round-trips", func(t *testing.T) {
		tx := purchase.NewTransactionID("HP123456")
		assert.False(t, tx.IsZero())
		require.NotNil(t, tx.Ptr())
		assert.Equal(t, "HP123456", *tx.Ptr())
	})

	t.Run("truncates to max length", func(t *testing.T) {
		tx := purchase.NewTransactionID(strings.Repeat("t", purchase.MaxTransactionIDLength+10))
		assert.Len(t, tx.Value(), purchase.MaxTransactionIDLength)
	})
}
