// Package address simulates the external address-lookup API the checkout
// flow uses for its cascading zone/street/building fields. Lookups resolve
// after a fixed latency; unknown parents yield empty lists, never errors.
package address

import (
	"context"
	"time"

	"github.com/nadanruchi/storefront/internal/interfaces"
)

type Service struct {
	latency time.Duration
}

func NewService(latency time.Duration) *Service {
	return &Service{latency: latency}
}

func (s *Service) Zones(ctx context.Context) ([]interfaces.Zone, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	zones := make([]interfaces.Zone, 0, len(qatarZones))
	for _, z := range qatarZones {
		zones = append(zones, interfaces.Zone{Number: z.number, Name: z.name})
	}
	return zones, nil
}

func (s *Service) Streets(ctx context.Context, zone string) ([]interfaces.Street, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	streets := []interfaces.Street{}
	for _, z := range qatarZones {
		if z.number != zone {
			continue
		}
		for _, st := range z.streets {
			streets = append(streets, interfaces.Street{Number: st.number, Name: st.name})
		}
	}
	return streets, nil
}

func (s *Service) Buildings(ctx context.Context, zone, street string) ([]interfaces.Building, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	buildings := []interfaces.Building{}
	for _, z := range qatarZones {
		if z.number != zone {
			continue
		}
		for _, st := range z.streets {
			if st.number != street {
				continue
			}
			for _, b := range st.buildings {
				buildings = append(buildings, interfaces.Building{Number: b})
			}
		}
	}
	return buildings, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
