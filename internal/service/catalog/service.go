package catalog

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service отдает каталог услуг и часы работы салона
// Данные неизменяемы после запуска, сервис безопасен для конкурентного использования
type Service struct {
	catalog ServiceCatalog
	hours   OpeningHours
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog ServiceCatalog, hours OpeningHours) *Service {
	return &Service{
		catalog: catalog,
		hours:   hours,
	}
}

// ListServices возвращает услуги в порядке каталога
func (s *Service) ListServices() []models.ServiceResponse {
	services := s.catalog.List()
	result := make([]models.ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = models.FromDomainService(svc)
	}
	return result
}

// OpeningHours возвращает часы работы, ключ - словенское название дня
// Нерабочие дни в ответ не попадают
func (s *Service) OpeningHours() map[string]models.OpeningHoursResponse {
	result := make(map[string]models.OpeningHoursResponse)
	for _, w := range s.hours.Windows() {
		result[domain.WeekdayNames[w.Weekday]] = models.OpeningHoursResponse{
			Period: w.Period,
			Start:  w.Open.String(),
			End:    w.Close.String(),
		}
	}
	return result
}
