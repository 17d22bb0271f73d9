package measure

import "testing"

func TestLengthConvert(t *testing.T) {
	tests := []struct {
		name string
		in   Length
		to   LengthUnit
		want float64
	}{
		{name: "cm to mm", in: NewLength(10.5, Centimetre), to: Millimetre, want: 105},
		{name: "m to cm", in: NewLength(1.05, Metre), to: Centimetre, want: 105},
		{name: "mm to m", in: NewLength(250, Millimetre), to: Metre, want: 0.25},
		{name: "same unit", in: NewLength(42, Centimetre), to: Centimetre, want: 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Convert(tc.to).Value(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLengthCeilValue(t *testing.T) {
	if got := NewLength(10.01, Centimetre).CeilValue(Centimetre); got != 11 {
		t.Errorf("got %d, want 11", got)
	}
	if got := NewLength(1.2, Centimetre).CeilValue(Millimetre); got != 12 {
		t.Errorf("got %d, want 12", got)
	}
}

func TestWeightConvert(t *testing.T) {
	if got := NewWeight(1.5, Kilogram).Convert(Gram).Value(); got != 1500 {
		t.Errorf("got %v, want 1500", got)
	}
	if got := NewWeight(250, Gram).Convert(Kilogram).Value(); got != 0.25 {
		t.Errorf("got %v, want 0.25", got)
	}
	if got := NewWeight(500.2, Gram).CeilValue(Gram); got != 501 {
		t.Errorf("got %v, want 501", got)
	}
}

func TestVolumeConvert(t *testing.T) {
	// 1m3 = 1e9 mm3
	if got := NewVolume(1e9, CubicMillimetre).Convert(CubicMetre).Value(); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := NewVolume(0.01, CubicMetre).Convert(CubicCentimetre).Value(); got != 10000 {
		t.Errorf("got %v, want 10000", got)
	}
}

func TestComparisons(t *testing.T) {
	if !NewLength(11, Centimetre).GreaterThan(NewLength(105, Millimetre)) {
		t.Error("expected 11cm > 105mm")
	}
	if NewWeight(1, Kilogram).GreaterThan(NewWeight(1000, Gram)) {
		t.Error("expected 1kg == 1000g")
	}
	if !NewVolume(0.26, CubicMetre).GreaterThan(NewVolume(0.25, CubicMetre)) {
		t.Error("expected 0.26m3 > 0.25m3")
	}
}
