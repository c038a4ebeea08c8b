package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

func newService(t *testing.T) *Service {
	t.Helper()
	catalog, err := domain.NewCatalog(domain.DefaultServices())
	require.NoError(t, err)
	hours, err := domain.NewOpeningHours(domain.DefaultWindows())
	require.NoError(t, err)
	return NewService(catalog, hours)
}

func TestListServices(t *testing.T) {
	got := newService(t).ListServices()

	require.Len(t, got, 2)
	assert.Equal(t, "striženje", got[0].Key)
	assert.Equal(t, 15, got[0].Step)
	require.NotNil(t, got[1].PriceFrom)
	assert.Equal(t, 40.0, *got[1].PriceFrom)
}

func TestOpeningHours(t *testing.T) {
	got := newService(t).OpeningHours()

	assert.Len(t, got, 6)
	assert.NotContains(t, got, "nedelja")
	assert.Equal(t, models.OpeningHoursResponse{Period: "dopoldne", Start: "08:00", End: "12:00"}, got["ponedeljek"])
	assert.Equal(t, models.OpeningHoursResponse{Period: "popoldne", Start: "14:00", End: "18:00"}, got["sobota"])
	assert.Equal(t, "19:00", got["četrtek"].End)
}

func TestOpeningHours_CustomTable(t *testing.T) {
	catalog, err := domain.NewCatalog(domain.DefaultServices())
	require.NoError(t, err)
	hours, err := domain.NewOpeningHours([]domain.Window{{
		Weekday: time.Friday,
		Period:  "ves dan",
		Open:    "09:00",
		Close:   "17:00",
	}})
	require.NoError(t, err)

	got := NewService(catalog, hours).OpeningHours()
	assert.Equal(t, map[string]models.OpeningHoursResponse{
		"petek": {Period: "ves dan", Start: "09:00", End: "17:00"},
	}, got)
}
