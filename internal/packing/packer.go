// Package packing assigns order items to shipping boxes. The packer is a
// volume and weight based approximation: it never computes real 3D
// placements, it checks that every item fits some orientation of the box
// and that the box's volume and load capacity are not exceeded.
package packing

import (
	"fmt"
	"math"
	"sort"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

// packItem is one physical unit to pack. Dimensions are whole millimetres
// rounded up, weight is whole grams rounded up. Volume keeps the exact
// product of the unrounded dimensions so thin items don't inflate.
type packItem struct {
	description string
	dims        [3]int // mm, sorted ascending
	weight      int    // g
	volume      int64  // mm3
}

// packBox is one candidate box. Outer dimensions equal inner dimensions.
type packBox struct {
	label   string
	dims    [3]int // mm, sorted ascending
	tare    int    // g
	maxLoad int    // g, capacity excluding tare
	volume  int64  // mm3
}

func (b packBox) holds(item packItem) bool {
	return item.dims[0] <= b.dims[0] &&
		item.dims[1] <= b.dims[1] &&
		item.dims[2] <= b.dims[2]
}

// Packer packs the items of one shipment into boxes admitted for one
// destination. Not safe for concurrent use; build one per calculation.
type Packer struct {
	guide *guidelines.Guidelines
	dest  entities.Destination
	boxes []packBox
	items []packItem
}

func NewPacker(guide *guidelines.Guidelines, dest entities.Destination) (*Packer, error) {
	if err := dest.Validate(); err != nil {
		return nil, err
	}
	return &Packer{guide: guide, dest: dest}, nil
}

// AddPackageType admits a box after checking it against the destination's
// size guidelines. Boxes that AusPost would refuse are rejected here so
// packing can never produce an unsendable parcel.
func (p *Packer) AddPackageType(pt entities.PackageType) error {
	if err := p.guide.ValidatePackageSize(pt.Length, pt.Width, pt.Height, p.dest); err != nil {
		return fmt.Errorf("package type %q: %w", pt.Label, err)
	}

	limits, err := p.guide.MaxParcelDimensions(p.dest)
	if err != nil {
		return err
	}

	dims := sortedDims(pt.Length, pt.Width, pt.Height)
	tare := pt.Weight.CeilValue(measure.Gram)
	maxLoad := int(limits.Weight.Convert(measure.Gram).Value()) - tare
	if maxLoad <= 0 {
		return fmt.Errorf("package type %q: %w: tare weight leaves no capacity", pt.Label, entities.ErrPackageSize)
	}

	p.boxes = append(p.boxes, packBox{
		label:   pt.Label,
		dims:    dims,
		tare:    tare,
		maxLoad: maxLoad,
		volume:  exactVolume(pt.Length, pt.Width, pt.Height),
	})
	return nil
}

// AddItems queues order items for packing, one entry per physical unit.
func (p *Packer) AddItems(items []entities.OrderItem) {
	for _, item := range items {
		unit := packItem{
			description: item.Title,
			dims:        sortedDims(item.Length, item.Width, item.Height),
			weight:      item.Weight.CeilValue(measure.Gram),
			volume:      exactVolume(item.Length, item.Width, item.Height),
		}
		for i := 0; i < item.Quantity; i++ {
			p.items = append(p.items, unit)
		}
	}
}

// Pack distributes the queued items over the admitted boxes. It first
// tries to fit the whole shipment into the single smallest box; failing
// that it fills boxes greedily, largest items first, preferring the box
// that takes the most items per pass. Returns ErrItemTooLarge when some
// item fits no box at all.
func (p *Packer) Pack() ([]entities.PackedBox, error) {
	if len(p.boxes) == 0 {
		return nil, fmt.Errorf("%w: no package types admitted", entities.ErrItemTooLarge)
	}
	if len(p.items) == 0 {
		return nil, nil
	}

	boxes := make([]packBox, len(p.boxes))
	copy(boxes, p.boxes)
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].volume < boxes[j].volume })

	items := make([]packItem, len(p.items))
	copy(items, p.items)
	sort.Slice(items, func(i, j int) bool { return items[i].volume > items[j].volume })

	for _, item := range items {
		if !p.fitsAnyBox(boxes, item) {
			return nil, fmt.Errorf("%w: item %q fits no available package type", entities.ErrItemTooLarge, item.description)
		}
	}

	if box, ok := p.singleBox(boxes, items); ok {
		return []entities.PackedBox{p.packedBox(box, items)}, nil
	}

	var packed []entities.PackedBox
	remaining := items
	for len(remaining) > 0 {
		box, taken := p.bestFill(boxes, remaining)
		if len(taken) == 0 {
			// unreachable after the per-item fit check above
			return nil, fmt.Errorf("%w: item %q fits no available package type", entities.ErrItemTooLarge, remaining[0].description)
		}
		contents := make([]packItem, 0, len(taken))
		rest := make([]packItem, 0, len(remaining)-len(taken))
		for i, item := range remaining {
			if _, ok := taken[i]; ok {
				contents = append(contents, item)
			} else {
				rest = append(rest, item)
			}
		}
		packed = append(packed, p.packedBox(box, contents))
		remaining = rest
	}
	return packed, nil
}

func (p *Packer) fitsAnyBox(boxes []packBox, item packItem) bool {
	for _, box := range boxes {
		if box.holds(item) && item.weight <= box.maxLoad {
			return true
		}
	}
	return false
}

// singleBox finds the smallest box that takes every item at once.
func (p *Packer) singleBox(boxes []packBox, items []packItem) (packBox, bool) {
	var totalVolume int64
	var totalWeight int
	for _, item := range items {
		totalVolume += item.volume
		totalWeight += item.weight
	}
	for _, box := range boxes {
		if totalVolume > box.volume || totalWeight > box.maxLoad {
			continue
		}
		fitsAll := true
		for _, item := range items {
			if !box.holds(item) {
				fitsAll = false
				break
			}
		}
		if fitsAll {
			return box, true
		}
	}
	return packBox{}, false
}

// bestFill greedily fills each candidate box with the remaining items and
// picks the box packing the most of them; ties go to the least wasted
// volume. Returns the chosen box and the indices of the items it took.
func (p *Packer) bestFill(boxes []packBox, remaining []packItem) (packBox, map[int]struct{}) {
	var (
		best       packBox
		bestTaken  map[int]struct{}
		bestWasted int64
	)
	for _, box := range boxes {
		taken := make(map[int]struct{})
		var usedVolume int64
		var usedWeight int
		for i, item := range remaining {
			if !box.holds(item) {
				continue
			}
			if usedVolume+item.volume > box.volume || usedWeight+item.weight > box.maxLoad {
				continue
			}
			taken[i] = struct{}{}
			usedVolume += item.volume
			usedWeight += item.weight
		}
		wasted := box.volume - usedVolume
		if len(taken) > len(bestTaken) || (len(taken) == len(bestTaken) && len(taken) > 0 && wasted < bestWasted) {
			best = box
			bestTaken = taken
			bestWasted = wasted
		}
	}
	return best, bestTaken
}

func (p *Packer) packedBox(box packBox, contents []packItem) entities.PackedBox {
	var usedVolume int64
	weight := box.tare
	descriptions := make([]string, 0, len(contents))
	for _, item := range contents {
		usedVolume += item.volume
		weight += item.weight
		descriptions = append(descriptions, item.description)
	}

	utilisation := 0.0
	if box.volume > 0 {
		utilisation = math.Round(float64(usedVolume)/float64(box.volume)*10000) / 100
	}

	return entities.PackedBox{
		Reference:       box.label,
		Weight:          measure.NewWeight(float64(weight), measure.Gram),
		Length:          measure.NewLength(float64(box.dims[2]), measure.Millimetre),
		Width:           measure.NewLength(float64(box.dims[1]), measure.Millimetre),
		Height:          measure.NewLength(float64(box.dims[0]), measure.Millimetre),
		Volume:          measure.NewVolume(float64(box.volume), measure.CubicMillimetre),
		RemainingWeight: measure.NewWeight(float64(box.maxLoad+box.tare-weight), measure.Gram),
		Utilisation:     utilisation,
		Items:           descriptions,
	}
}

func sortedDims(length, width, height measure.Length) [3]int {
	dims := [3]int{
		length.CeilValue(measure.Millimetre),
		width.CeilValue(measure.Millimetre),
		height.CeilValue(measure.Millimetre),
	}
	sort.Ints(dims[:])
	return dims
}

// exactVolume multiplies the unrounded millimetre dimensions and rounds
// the product up once, so many thin items don't accumulate rounding.
func exactVolume(length, width, height measure.Length) int64 {
	v := length.Convert(measure.Millimetre).Value() *
		width.Convert(measure.Millimetre).Value() *
		height.Convert(measure.Millimetre).Value()
	return int64(math.Ceil(v))
}
