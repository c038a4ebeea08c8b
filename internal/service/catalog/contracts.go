package catalog

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ServiceCatalog источник услуг салона
type ServiceCatalog interface {
	List() []domain.Service
}

// OpeningHours источник часов работы
type OpeningHours interface {
	Windows() []domain.Window
}
