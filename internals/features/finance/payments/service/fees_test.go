package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "yugamki_backend/internals/features/events/events/model"
	"yugamki_backend/internals/features/finance/payments/model"
)

func TestPassPrice(t *testing.T) {
	for days, want := range map[int]int{1: 500, 2: 800, 3: 1200} {
		got, ok := PassPrice(days)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := PassPrice(4)
	assert.False(t, ok)
	_, ok = PassPrice(0)
	assert.False(t, ok)
}

func TestResolveFeePaidEvent(t *testing.T) {
	event := &eventModel.EventModel{
		EventType:         eventModel.TypePaid,
		EventFeePerPerson: 300,
		EventFeePerTeam:   900,
	}

	fee, err := ResolveFee(event, false, false)
	require.NoError(t, err)
	assert.Equal(t, 300, fee)

	fee, err = ResolveFee(event, true, false)
	require.NoError(t, err)
	assert.Equal(t, 900, fee)

	// A festival pass does not discount paid events.
	fee, err = ResolveFee(event, false, true)
	require.NoError(t, err)
	assert.Equal(t, 300, fee)
}

func TestResolveFeeGeneralEvent(t *testing.T) {
	// Zero fee fields do not make a general event free; the pass is
	// still required.
	zeroFee := &eventModel.EventModel{EventType: eventModel.TypeGeneral}
	_, err := ResolveFee(zeroFee, false, false)
	assert.ErrorIs(t, err, ErrGeneralPassRequired)

	fee, err := ResolveFee(zeroFee, false, true)
	require.NoError(t, err)
	assert.Zero(t, fee)

	gated := &eventModel.EventModel{
		EventType:         eventModel.TypeGeneral,
		EventFeePerPerson: 100,
	}
	fee, err = ResolveFee(gated, false, true)
	require.NoError(t, err)
	assert.Zero(t, fee)

	_, err = ResolveFee(gated, false, false)
	assert.ErrorIs(t, err, ErrGeneralPassRequired)
}

func TestRefundStatus(t *testing.T) {
	assert.Equal(t, model.PaymentStatusRefunded, RefundStatus(500, 500))
	assert.Equal(t, model.PaymentStatusRefunded, RefundStatus(500, 600))
	assert.Equal(t, model.PaymentStatusPartialRefund, RefundStatus(500, 200))
}
