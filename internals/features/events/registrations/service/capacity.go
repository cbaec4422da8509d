package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "yugamki_backend/internals/features/events/events/model"
)

// TryReserveSlot bumps the registration counter with a single conditional
// UPDATE. Zero rows affected means the event is full (or gone); there is
// no read-then-write window for concurrent registrations to slip through.
func TryReserveSlot(tx *gorm.DB, eventID uuid.UUID) (bool, error) {
	res := tx.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND (event_max_registrations = 0 OR event_current_registrations < event_max_registrations)", eventID).
		UpdateColumn("event_current_registrations", gorm.Expr("event_current_registrations + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReleaseSlot undoes a reservation. Guarded so the counter never goes
// negative if a release races a repair job.
func ReleaseSlot(tx *gorm.DB, eventID uuid.UUID) error {
	return tx.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND event_current_registrations > 0", eventID).
		UpdateColumn("event_current_registrations", gorm.Expr("event_current_registrations - 1")).Error
}
