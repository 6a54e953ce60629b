package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusShipped, true},
		{StatusConfirmed, StatusProcessing, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusPending, StatusCancelled, true},
		{StatusDelivered, StatusReturned, true},
		{StatusReturned, StatusRefunded, true},
		{StatusReturned, StatusShipped, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusRefunded, StatusReturned, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" Shipped ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, s)

	_, err = ParseStatus("lost")
	require.Error(t, err)
}

func TestStatusQualifying(t *testing.T) {
	assert.True(t, StatusConfirmed.Qualifying())
	assert.True(t, StatusDelivered.Qualifying())
	assert.False(t, StatusPending.Qualifying())
	assert.False(t, StatusCancelled.Qualifying())
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodCashOnDelivery, m)
	assert.False(t, m.Online())

	m, err = ParsePaymentMethod("UPI")
	require.NoError(t, err)
	assert.True(t, m.Online())

	_, err = ParsePaymentMethod("barter")
	require.Error(t, err)
}

func TestGenerateNumber(t *testing.T) {
	now := time.UnixMilli(1_741_944_413_589).UTC()
	assert.Equal(t, "ORD-2025-413589", GenerateNumber("ORD", now))
	assert.Equal(t, "INV-2025-413589", GenerateNumber("INV", now))
}
