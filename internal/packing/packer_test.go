package packing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/internal/packing"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

func box(label string, l, w, h float64) entities.PackageType {
	return entities.PackageType{
		Label:       label,
		Length:      measure.NewLength(l, measure.Centimetre),
		Width:       measure.NewLength(w, measure.Centimetre),
		Height:      measure.NewLength(h, measure.Centimetre),
		Weight:      measure.NewWeight(100, measure.Gram),
		Destination: entities.DestinationDomestic,
	}
}

func item(title string, qty int, l, w, h, kg float64) entities.OrderItem {
	return entities.OrderItem{
		Title:    title,
		Quantity: qty,
		Length:   measure.NewLength(l, measure.Centimetre),
		Width:    measure.NewLength(w, measure.Centimetre),
		Height:   measure.NewLength(h, measure.Centimetre),
		Weight:   measure.NewWeight(kg, measure.Kilogram),
	}
}

func newPacker(t *testing.T, types ...entities.PackageType) *packing.Packer {
	t.Helper()
	p, err := packing.NewPacker(guidelines.New(), entities.DestinationDomestic)
	require.NoError(t, err)
	for _, pt := range types {
		require.NoError(t, p.AddPackageType(pt))
	}
	return p
}

func TestPackPrefersSmallestBox(t *testing.T) {
	p := newPacker(t, box("large", 40, 30, 20), box("small", 20, 15, 10))
	p.AddItems([]entities.OrderItem{item("mug", 2, 10, 8, 8, 0.4)})

	packed, err := p.Pack()
	require.NoError(t, err)
	require.Len(t, packed, 1)

	assert.Equal(t, "small", packed[0].Reference)
	assert.Equal(t, []string{"mug", "mug"}, packed[0].Items)
	// 2 x 400g items plus 100g tare
	assert.InDelta(t, 900, packed[0].Weight.Convert(measure.Gram).Value(), 0.001)
	assert.Greater(t, packed[0].Utilisation, 0.0)
}

func TestPackConservesItems(t *testing.T) {
	p := newPacker(t, box("medium", 30, 22, 10))
	p.AddItems([]entities.OrderItem{
		item("book", 3, 20, 15, 3, 0.8),
		item("poster tube", 2, 28, 8, 8, 0.5),
	})

	packed, err := p.Pack()
	require.NoError(t, err)

	var all []string
	for _, pb := range packed {
		all = append(all, pb.Items...)
	}
	assert.Len(t, all, 5)
	assert.ElementsMatch(t, []string{"book", "book", "book", "poster tube", "poster tube"}, all)
}

func TestPackSplitsOnWeight(t *testing.T) {
	// Each item is 12 kg; the 22 kg domestic limit forces one box per item.
	p := newPacker(t, box("crate", 50, 40, 30))
	p.AddItems([]entities.OrderItem{item("dumbbell", 2, 20, 20, 20, 12)})

	packed, err := p.Pack()
	require.NoError(t, err)
	require.Len(t, packed, 2)
	for _, pb := range packed {
		assert.Equal(t, []string{"dumbbell"}, pb.Items)
	}
}

func TestPackItemTooLarge(t *testing.T) {
	p := newPacker(t, box("small", 20, 15, 10))
	p.AddItems([]entities.OrderItem{item("surfboard", 1, 90, 50, 12, 6)})

	_, err := p.Pack()
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrItemTooLarge)
	assert.Contains(t, err.Error(), "surfboard")
}

func TestPackNoItems(t *testing.T) {
	p := newPacker(t, box("small", 20, 15, 10))
	packed, err := p.Pack()
	require.NoError(t, err)
	assert.Empty(t, packed)
}

func TestPackNoBoxes(t *testing.T) {
	p, err := packing.NewPacker(guidelines.New(), entities.DestinationDomestic)
	require.NoError(t, err)
	p.AddItems([]entities.OrderItem{item("mug", 1, 10, 8, 8, 0.4)})

	_, err = p.Pack()
	assert.ErrorIs(t, err, entities.ErrItemTooLarge)
}

func TestAddPackageTypeRejectsOversize(t *testing.T) {
	p, err := packing.NewPacker(guidelines.New(), entities.DestinationDomestic)
	require.NoError(t, err)

	err = p.AddPackageType(box("pallet", 120, 100, 80))
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrPackageSize)
}

func TestAddPackageTypeInternationalGirth(t *testing.T) {
	p, err := packing.NewPacker(guidelines.New(), entities.DestinationInternational)
	require.NoError(t, err)

	cube := box("cube", 40, 40, 40)
	cube.Destination = entities.DestinationInternational
	err = p.AddPackageType(cube)
	assert.ErrorIs(t, err, entities.ErrPackageSize)
}

func TestNewPackerUnknownDestination(t *testing.T) {
	_, err := packing.NewPacker(guidelines.New(), "interstellar")
	assert.ErrorIs(t, err, entities.ErrUnknownDestination)
}
