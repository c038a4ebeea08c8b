package get_services

import "github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"

type CatalogService interface {
	ListServices() []models.ServiceResponse
}
