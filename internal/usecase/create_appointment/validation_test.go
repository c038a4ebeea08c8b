package create_appointment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/scheduler"
)

func TestMapValidationError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		wantReason string
	}{
		{"invalid datetime", scheduler.ErrInvalidDateTime, ErrInvalidDateTime, "invalid_datetime"},
		{"closed day", scheduler.ErrClosedDay, ErrClosedDay, "closed_day"},
		{"outside hours", scheduler.ErrOutsideHours, ErrOutsideHours, "outside_hours"},
		{"conflict", scheduler.ErrConflict, ErrConflict, "conflict"},
		{"non-positive duration", scheduler.ErrInvalidDuration, ErrInvalidDuration, "invalid_duration"},
		{"incomplete booking", scheduler.ErrIncompleteBooking, ErrInternal, ""},
		{"corrupt booking", scheduler.ErrCorruptBooking, ErrInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, reason := mapValidationError(fmt.Errorf("%w: details", tt.err))
			assert.ErrorIs(t, mapped, tt.wantErr)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
