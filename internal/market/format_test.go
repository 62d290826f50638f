package market

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{106250, "$106,250.00"},
		{1234.5, "$1,234.50"},
		{1000, "$1,000.00"},
		{999.1234, "$999.1234"},
		{25.1234, "$25.1234"},
		{1, "$1.0000"},
		{0.5, "$0.500000"},
		{0.01, "$0.010000"},
		{0.009, "$0.00900000"},
		{0.000014, "$0.00001400"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2.41e12, "$2.41T"},
		{1e12, "$1.00T"},
		{89.5e9, "$89.50B"},
		{4.56e6, "$4.56M"},
		{7800, "$7.80K"},
		{950, "$950.00"},
		{0, "$0.00"},
	}

	for _, tt := range tests {
		if got := FormatVolume(tt.value); got != tt.want {
			t.Errorf("FormatVolume(%v) = %q, want %q", tt.value, got, tt.want)
		}
		if got := FormatMarketCap(tt.value); got != tt.want {
			t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		delta float64
		want  Direction
	}{
		{4.2, DirectionUp},
		{-0.01, DirectionDown},
		{0, DirectionFlat},
	}

	for _, tt := range tests {
		if got := ChangeDirection(tt.delta); got != tt.want {
			t.Errorf("ChangeDirection(%v) = %q, want %q", tt.delta, got, tt.want)
		}
	}
}

func TestDirectionArrow(t *testing.T) {
	if DirectionUp.Arrow() == DirectionDown.Arrow() {
		t.Error("up and down arrows are identical")
	}
	if DirectionFlat.Arrow() == "" {
		t.Error("flat arrow is empty")
	}
}
