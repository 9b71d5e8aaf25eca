package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Advance(t *testing.T) {
	order := &Order{Status: StatusPending}

	for _, want := range []Status{StatusPreparing, StatusReady, StatusOnTheWay, StatusDone} {
		require.NoError(t, order.Advance())
		assert.Equal(t, want, order.Status)
	}

	// Done is terminal.
	err := order.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusDone, order.Status)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order cancels", func(t *testing.T) {
		order := &Order{Status: StatusPending}
		require.NoError(t, order.Cancel())
		assert.Equal(t, StatusCancelled, order.Status)
	})

	t.Run("preparing order refuses cancel", func(t *testing.T) {
		order := &Order{Status: StatusPreparing}
		assert.ErrorIs(t, order.Cancel(), ErrInvalidTransition)
		assert.Equal(t, StatusPreparing, order.Status)
	})

	t.Run("terminal order refuses cancel", func(t *testing.T) {
		order := &Order{Status: StatusRejected, AdminComment: "kitchen closed"}
		assert.ErrorIs(t, order.Cancel(), ErrInvalidTransition)
		assert.Equal(t, StatusRejected, order.Status)
		assert.Equal(t, "kitchen closed", order.AdminComment)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		order := &Order{Status: StatusPending}
		assert.ErrorIs(t, order.Reject(""), ErrReasonRequired)
		assert.ErrorIs(t, order.Reject("   "), ErrReasonRequired)
		assert.Equal(t, StatusPending, order.Status)
		assert.Empty(t, order.AdminComment)
	})

	t.Run("rejects from any non-terminal state", func(t *testing.T) {
		for _, status := range []Status{StatusPending, StatusPreparing, StatusReady, StatusOnTheWay} {
			order := &Order{Status: status}
			require.NoError(t, order.Reject("out of stock"))
			assert.Equal(t, StatusRejected, order.Status)
			assert.Equal(t, "out of stock", order.AdminComment)
		}
	})

	t.Run("terminal orders are locked", func(t *testing.T) {
		order := &Order{Status: StatusDone}
		assert.ErrorIs(t, order.Reject("too late"), ErrInvalidTransition)
		assert.Equal(t, StatusDone, order.Status)
		assert.Empty(t, order.AdminComment)
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		order := &Order{Status: StatusPending}
		require.NoError(t, order.Reject("  no delivery to that zone  "))
		assert.Equal(t, "no delivery to that zone", order.AdminComment)
	})
}

func TestOrder_CalculateTotal(t *testing.T) {
	order := &Order{
		Lines: []OrderLine{
			{ItemID: "puttu", Price: decimal.RequireFromString("12.50"), Quantity: 2},
			{ItemID: "chai", Price: decimal.RequireFromString("3"), Quantity: 3},
		},
	}
	order.CalculateTotal()
	assert.True(t, order.Total.Equal(decimal.RequireFromString("34")), "got %s", order.Total)
}

func TestCardDetails_Validate(t *testing.T) {
	valid := CardDetails{
		Number:     "4111 1111 1111 1111",
		Expiry:     "09/27",
		CVV:        "123",
		HolderName: "Arun Kumar",
	}

	t.Run("valid card", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*CardDetails)
	}{
		{"short number", func(c *CardDetails) { c.Number = "1234 5678 9012" }},
		{"letters in number", func(c *CardDetails) { c.Number = "4111x1111111111x" }},
		{"missing expiry", func(c *CardDetails) { c.Expiry = "" }},
		{"month zero", func(c *CardDetails) { c.Expiry = "00/27" }},
		{"month thirteen", func(c *CardDetails) { c.Expiry = "13/27" }},
		{"expiry not MM/YY", func(c *CardDetails) { c.Expiry = "9/27" }},
		{"cvv too short", func(c *CardDetails) { c.CVV = "12" }},
		{"cvv too long", func(c *CardDetails) { c.CVV = "12345" }},
		{"empty holder", func(c *CardDetails) { c.HolderName = "   " }},
		{"digits in holder", func(c *CardDetails) { c.HolderName = "Arun 4" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := valid
			tt.mutate(&card)
			assert.ErrorIs(t, card.Validate(), ErrInvalidCardDetails)
		})
	}

	t.Run("four digit cvv accepted", func(t *testing.T) {
		card := valid
		card.CVV = "1234"
		assert.NoError(t, card.Validate())
	})
}
