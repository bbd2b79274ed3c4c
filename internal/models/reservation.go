package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Reservation represents a booked time slot against a table number.
//
// Date is a YYYY-MM-DD calendar date; SlotTimeStart and SlotTimeEnd are
// HH:MM 24-hour times forming a half-open interval [start, end).
type Reservation struct {
	ID            string `json:"id" dynamodbav:"id"`
	TableNumber   int    `json:"tableNumber" dynamodbav:"tableNumber"`
	ClientName    string `json:"clientName" dynamodbav:"clientName"`
	PhoneNumber   string `json:"phoneNumber" dynamodbav:"phoneNumber"`
	Date          string `json:"date" dynamodbav:"date"`
	SlotTimeStart string `json:"slotTimeStart" dynamodbav:"slotTimeStart"`
	SlotTimeEnd   string `json:"slotTimeEnd" dynamodbav:"slotTimeEnd"`
}

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	TableNumber   *int   `json:"tableNumber" validate:"required"`
	ClientName    string `json:"clientName"`
	PhoneNumber   string `json:"phoneNumber"`
	Date          string `json:"date" validate:"required"`
	SlotTimeStart string `json:"slotTimeStart" validate:"required"`
	SlotTimeEnd   string `json:"slotTimeEnd" validate:"required"`
}

// ReservationListResponse wraps the stored records for GET /reservations.
type ReservationListResponse struct {
	Reservations []Reservation `json:"reservations"`
}

// CreateReservationResponse carries the generated id for POST /reservations.
type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
}

// SlotMinutes converts an HH:MM time to minutes since midnight.
func SlotMinutes(t string) (int, error) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return 0, fmt.Errorf("invalid slot time %q", t)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid slot time %q: %w", t, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid slot time %q: %w", t, err)
	}

	return hours*60 + minutes, nil
}

// SlotsOverlap reports whether the half-open intervals [startA, endA) and
// [startB, endB) share at least one minute. Exactly abutting slots do not
// overlap.
func SlotsOverlap(startA, endA, startB, endB string) (bool, error) {
	aStart, err := SlotMinutes(startA)
	if err != nil {
		return false, err
	}
	aEnd, err := SlotMinutes(endA)
	if err != nil {
		return false, err
	}
	bStart, err := SlotMinutes(startB)
	if err != nil {
		return false, err
	}
	bEnd, err := SlotMinutes(endB)
	if err != nil {
		return false, err
	}

	return aStart < bEnd && aEnd > bStart, nil
}
