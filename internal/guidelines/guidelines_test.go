package guidelines_test

import (
	"testing"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/pkg/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cm(v float64) measure.Length { return measure.NewLength(v, measure.Centimetre) }

func TestCubicWeight(t *testing.T) {
	g := guidelines.New()

	// 0.01 m3 at density 250 is exactly 2.5 kg
	got := g.CubicWeight(measure.NewVolume(0.01, measure.CubicMetre))
	assert.InDelta(t, 2.5, got.Convert(measure.Kilogram).Value(), 1e-9)

	got = g.CubicWeight(measure.NewVolume(1e9, measure.CubicMillimetre))
	assert.InDelta(t, 250, got.Convert(measure.Kilogram).Value(), 1e-9)
}

func TestShippingWeight(t *testing.T) {
	g := guidelines.New()

	kg := func(v float64) measure.Weight { return measure.NewWeight(v, measure.Kilogram) }
	// cubic weight of 0.02 m3 is 5 kg
	vol := measure.NewVolume(0.02, measure.CubicMetre)

	tests := []struct {
		name   string
		actual measure.Weight
		want   float64
	}{
		{name: "light parcel never charged at cubic weight", actual: kg(0.5), want: 0.5},
		{name: "cubic weight wins above the floor", actual: kg(2), want: 5},
		{name: "actual weight wins when heavier", actual: kg(6), want: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.ShippingWeight(vol, tc.actual)
			assert.InDelta(t, tc.want, got.Convert(measure.Kilogram).Value(), 1e-9)
		})
	}
}

func TestValidatePackageSize(t *testing.T) {
	g := guidelines.New()

	tests := []struct {
		name    string
		l, w, h measure.Length
		dest    entities.Destination
		wantErr error
	}{
		{name: "domestic ok", l: cm(30), w: cm(30), h: cm(30), dest: entities.DestinationDomestic},
		{name: "edge too long", l: cm(110), w: cm(10), h: cm(10), dest: entities.DestinationDomestic, wantErr: entities.ErrPackageSize},
		{name: "domestic volume too big", l: cm(100), w: cm(100), h: cm(100), dest: entities.DestinationDomestic, wantErr: entities.ErrPackageSize},
		{name: "international ok", l: cm(50), w: cm(30), h: cm(30), dest: entities.DestinationInternational},
		{name: "international girth too big", l: cm(40), w: cm(40), h: cm(40), dest: entities.DestinationInternational, wantErr: entities.ErrPackageSize},
		{name: "unknown destination", l: cm(10), w: cm(10), h: cm(10), dest: entities.Destination("galactic"), wantErr: entities.ErrUnknownDestination},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.ValidatePackageSize(tc.l, tc.w, tc.h, tc.dest)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMaxParcelDimensions(t *testing.T) {
	g := guidelines.New()

	dom, err := g.MaxParcelDimensions(entities.DestinationDomestic)
	require.NoError(t, err)
	assert.Equal(t, 105.0, dom.Length.Convert(measure.Centimetre).Value())
	assert.Equal(t, 22.0, dom.Weight.Convert(measure.Kilogram).Value())
	assert.Equal(t, 0.25, dom.Volume.Convert(measure.CubicMetre).Value())

	intl, err := g.MaxParcelDimensions(entities.DestinationInternational)
	require.NoError(t, err)
	assert.Equal(t, 20.0, intl.Weight.Convert(measure.Kilogram).Value())
	assert.Equal(t, 140.0, intl.Girth.Convert(measure.Centimetre).Value())

	_, err = g.MaxParcelDimensions(entities.Destination("lunar"))
	assert.ErrorIs(t, err, entities.ErrUnknownDestination)
}
