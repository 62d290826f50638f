package market

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Direction is the three-way classification of a signed change. The core
// exposes the semantic tag; presentation (color, glyph) belongs to the
// caller.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// ChangeDirection classifies a signed delta.
func ChangeDirection(delta float64) Direction {
	switch {
	case delta > 0:
		return DirectionUp
	case delta < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// Arrow returns a plain-text glyph for ticker-style rendering.
func (d Direction) Arrow() string {
	switch d {
	case DirectionUp:
		return "▲"
	case DirectionDown:
		return "▼"
	default:
		return "–"
	}
}

// grouped formats large prices with thousands separators.
var grouped = message.NewPrinter(language.English)

// FormatPrice renders a price with precision tiers: grouped 2 decimals at
// $1,000 and above, then 4, 6, and 8 decimals as magnitude shrinks so
// micro-cap prices stay legible.
func FormatPrice(p float64) string {
	switch {
	case p >= 1000:
		return grouped.Sprintf("$%.2f", p)
	case p >= 1:
		return fmt.Sprintf("$%.4f", p)
	case p >= 0.01:
		return fmt.Sprintf("$%.6f", p)
	default:
		return fmt.Sprintf("$%.8f", p)
	}
}

// FormatVolume renders a 24h volume with a T/B/M/K magnitude suffix.
func FormatVolume(v float64) string {
	return formatMagnitude(v)
}

// FormatMarketCap renders a market cap with a T/B/M/K magnitude suffix.
func FormatMarketCap(m float64) string {
	return formatMagnitude(m)
}

func formatMagnitude(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}
