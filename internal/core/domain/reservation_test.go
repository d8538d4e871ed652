package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"pending to confirmed", ReservationPending, ReservationConfirmed, true},
		{"pending to cancelled", ReservationPending, ReservationCancelled, true},
		{"pending cannot skip to in progress", ReservationPending, ReservationInProgress, false},
		{"pending cannot skip to completed", ReservationPending, ReservationCompleted, false},
		{"confirmed to in progress", ReservationConfirmed, ReservationInProgress, true},
		{"confirmed to cancelled", ReservationConfirmed, ReservationCancelled, true},
		{"confirmed cannot complete directly", ReservationConfirmed, ReservationCompleted, false},
		{"in progress to completed", ReservationInProgress, ReservationCompleted, true},
		{"in progress cannot cancel", ReservationInProgress, ReservationCancelled, false},
		{"completed is terminal", ReservationCompleted, ReservationCancelled, false},
		{"cancelled is terminal", ReservationCancelled, ReservationConfirmed, false},
		{"no self transition", ReservationPending, ReservationPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, Reservation{Status: ReservationCompleted}.IsTerminal())
	assert.True(t, Reservation{Status: ReservationCancelled}.IsTerminal())
	assert.False(t, Reservation{Status: ReservationPending}.IsTerminal())
	assert.False(t, Reservation{Status: ReservationConfirmed}.IsTerminal())
	assert.False(t, Reservation{Status: ReservationInProgress}.IsTerminal())
}
