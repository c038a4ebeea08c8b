package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration возвращается, если длительность не подходит услуге
	ErrInvalidDuration = errors.New("domain: duration not allowed for service")

	// ErrInvalidService возвращается при некорректном описании услуги
	ErrInvalidService = errors.New("domain: invalid service definition")
)

// Service salon service definition from the catalog
type Service struct {
	Key         string
	Title       string
	MinDuration int // minutes
	MaxDuration int // minutes
	Step        int // minutes between selectable durations
	PriceFrom   *float64
}

// Validate checks the definition itself
func (s Service) Validate() error {
	switch {
	case s.Key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidService)
	case s.MinDuration < MinAppointmentMinutes || s.MaxDuration > MaxAppointmentMinutes:
		return fmt.Errorf("%w: %s durations must be within %d..%d", ErrInvalidService, s.Key,
			MinAppointmentMinutes, MaxAppointmentMinutes)
	case s.MinDuration > s.MaxDuration:
		return fmt.Errorf("%w: %s min_duration > max_duration", ErrInvalidService, s.Key)
	case s.Step <= 0:
		return fmt.Errorf("%w: %s step must be positive", ErrInvalidService, s.Key)
	case s.PriceFrom != nil && *s.PriceFrom < 0:
		return fmt.Errorf("%w: %s negative price", ErrInvalidService, s.Key)
	}
	return nil
}

// ValidateDuration accepts min, min+step, ... up to max
func (s Service) ValidateDuration(minutes int) error {
	if minutes < s.MinDuration || minutes > s.MaxDuration {
		return fmt.Errorf("%w: %s requires %d..%d minutes, got %d",
			ErrInvalidDuration, s.Key, s.MinDuration, s.MaxDuration, minutes)
	}
	if (minutes-s.MinDuration)%s.Step != 0 {
		return fmt.Errorf("%w: %s duration must move in steps of %d minutes, got %d",
			ErrInvalidDuration, s.Key, s.Step, minutes)
	}
	return nil
}

// Catalog immutable list of services
type Catalog struct {
	services []Service
	byKey    map[string]int
}

// NewCatalog validates definitions and builds the catalog
func NewCatalog(services []Service) (Catalog, error) {
	c := Catalog{
		services: make([]Service, 0, len(services)),
		byKey:    make(map[string]int, len(services)),
	}

	for _, s := range services {
		if err := s.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, exists := c.byKey[s.Key]; exists {
			return Catalog{}, fmt.Errorf("%w: duplicate key %s", ErrInvalidService, s.Key)
		}
		c.byKey[s.Key] = len(c.services)
		c.services = append(c.services, s)
	}

	return c, nil
}

// Find looks a service up by key
func (c Catalog) Find(key string) (Service, bool) {
	idx, ok := c.byKey[key]
	if !ok {
		return Service{}, false
	}
	return c.services[idx], true
}

// List returns a copy of all services in declaration order
func (c Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// DefaultServices salon catalog used when config has none
func DefaultServices() []Service {
	haircut, coloring := 15.0, 40.0
	return []Service{
		{Key: "striženje", Title: "Striženje", MinDuration: 15, MaxDuration: 30, Step: 15, PriceFrom: &haircut},
		{Key: "barvanje", Title: "Barvanje", MinDuration: 90, MaxDuration: 240, Step: 30, PriceFrom: &coloring},
	}
}
