package service

import (
	"errors"
	"math"
	"time"
)

var ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")

// Nights counts billable nights, rounding partial nights up. A same-day
// stay still bills one night.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkIn.Before(checkOut) {
		return 0, ErrCheckOutBeforeCheckIn
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

func TotalCost(pricePerNight int, checkIn, checkOut time.Time) (int, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return nights * pricePerNight, nil
}
