package get_opening_hours

import "github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"

type CatalogService interface {
	OpeningHours() map[string]models.OpeningHoursResponse
}
