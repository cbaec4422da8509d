package service

import (
	"errors"

	eventModel "yugamki_backend/internals/features/events/events/model"
	"yugamki_backend/internals/features/finance/payments/model"
)

// Festival pass pricing by day count.
var PassPrices = map[int]int{
	1: 500,
	2: 800,
	3: 1200,
}

func PassPrice(days int) (int, bool) {
	price, ok := PassPrices[days]
	return price, ok
}

var ErrGeneralPassRequired = errors.New("general events are covered by a festival pass, not per-event payment")

// ResolveFee returns what a registration owes. GENERAL events are never
// paid per event: an active pass covers them for free, and without one
// the caller must surface the pass-required flow. The event's own fee
// fields do not matter for GENERAL.
func ResolveFee(event *eventModel.EventModel, isTeamRegistration bool, hasActivePass bool) (int, error) {
	if event.EventType == eventModel.TypeGeneral {
		if hasActivePass {
			return 0, nil
		}
		return 0, ErrGeneralPassRequired
	}
	if isTeamRegistration {
		return event.EventFeePerTeam, nil
	}
	return event.EventFeePerPerson, nil
}

// RefundStatus picks the terminal status for a refund of the given size.
func RefundStatus(paidAmount, refundAmount int) string {
	if refundAmount >= paidAmount {
		return model.PaymentStatusRefunded
	}
	return model.PaymentStatusPartialRefund
}
