package repo

import (
	"context"

	"github.com/ausship/auspost-rate-service/internal/catalog"
	"github.com/ausship/auspost-rate-service/internal/entities"
)

// staticPackageTypes serves the built-in AusPost boxes when the merchant
// runs without a database. Label lists narrow the selection; an empty
// list enables every built-in type for that destination.
type staticPackageTypes struct {
	labels map[entities.Destination]map[string]struct{}
}

func NewStaticPackageTypes(domestic, international []string) *staticPackageTypes {
	toSet := func(labels []string) map[string]struct{} {
		if len(labels) == 0 {
			return nil
		}
		set := make(map[string]struct{}, len(labels))
		for _, label := range labels {
			set[label] = struct{}{}
		}
		return set
	}
	return &staticPackageTypes{
		labels: map[entities.Destination]map[string]struct{}{
			entities.DestinationDomestic:      toSet(domestic),
			entities.DestinationInternational: toSet(international),
		},
	}
}

func (s *staticPackageTypes) ListEnabled(_ context.Context, dest entities.Destination) ([]entities.PackageType, error) {
	if err := dest.Validate(); err != nil {
		return nil, err
	}

	all := catalog.BuiltinPackageTypes(dest)
	enabled := s.labels[dest]
	if enabled == nil {
		return all, nil
	}

	out := make([]entities.PackageType, 0, len(enabled))
	for _, pt := range all {
		if _, ok := enabled[pt.Label]; ok {
			out = append(out, pt)
		}
	}
	return out, nil
}
