// market/instruments.go
package market

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknownInstrument is returned by ParsePair for pairs outside the
// supported universe. Classification itself never fails: Classify treats
// anything unrecognized as standard-class, which is the documented default
// for rows that bypass the CLI boundary (bulk import).
var ErrUnknownInstrument = errors.New("unknown instrument")

// Class is the pip-scaling class of an instrument.
type Class int

const (
	Standard Class = iota // pip = 0.0001
	Yen                   // JPY-quoted, pip = 0.01
	Metal                 // XAU/XAG, pip = 0.1
)

func (c Class) String() string {
	switch c {
	case Yen:
		return "yen"
	case Metal:
		return "metal"
	default:
		return "standard"
	}
}

// PipSize returns the price increment of one pip for the class.
func (c Class) PipSize() float64 {
	switch c {
	case Yen:
		return 0.01
	case Metal:
		return 0.1
	default:
		return 0.0001
	}
}

// PipMultiplier converts a raw price difference into pips.
func (c Class) PipMultiplier() float64 {
	switch c {
	case Yen:
		return 100
	case Metal:
		return 10
	default:
		return 10000
	}
}

// DisplayDecimals is the number of decimal places used when rendering
// prices of this class. Display only; stored values keep full precision.
func (c Class) DisplayDecimals() int {
	if c == Yen {
		return 3
	}
	return 5
}

// Classify maps an instrument to its pip class. The metal check must run
// before the yen check; the ordering is part of the contract even though
// no supported metal is quoted in JPY.
func Classify(pair string) Class {
	if isMetal(pair) {
		return Metal
	}
	if strings.Contains(pair, "JPY") {
		return Yen
	}
	return Standard
}

func isMetal(pair string) bool {
	return strings.HasPrefix(pair, "XAU") || strings.HasPrefix(pair, "XAG")
}

// DollarPerPip returns the account-currency value of one pip per standard
// lot. Silver is the only instrument whose value differs from its class
// default, so this is keyed on the pair rather than the class.
func DollarPerPip(pair string) float64 {
	switch {
	case strings.HasPrefix(pair, "XAU"):
		return 10
	case strings.HasPrefix(pair, "XAG"):
		return 50
	case Classify(pair) == Yen:
		return 7
	default:
		return 10
	}
}

// Meta describes one tradeable instrument.
type Meta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
}

// Instruments is the supported universe: the majors, the common minors and
// the two spot metals.
var Instruments = buildInstruments(
	// Majors
	"EUR/USD", "USD/JPY", "GBP/USD", "USD/CHF",
	"AUD/USD", "USD/CAD", "NZD/USD",
	// Minors
	"EUR/GBP", "EUR/JPY", "EUR/AUD", "EUR/CAD",
	"EUR/CHF", "EUR/NZD", "GBP/JPY", "GBP/AUD",
	"GBP/CAD", "GBP/CHF", "GBP/NZD", "CHF/JPY",
	"CAD/JPY", "AUD/JPY", "NZD/JPY",
	// Metals
	"XAU/USD", "XAG/USD",
)

func buildInstruments(pairs ...string) map[string]Meta {
	m := make(map[string]Meta, len(pairs))
	for _, p := range pairs {
		base, quote, _ := strings.Cut(p, "/")
		m[p] = Meta{Name: p, BaseCurrency: base, QuoteCurrency: quote}
	}
	return m
}

// Pairs returns the supported pair names in sorted order.
func Pairs() []string {
	out := make([]string, 0, len(Instruments))
	for p := range Instruments {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ParsePair validates a pair name against the supported universe. Input is
// upper-cased and trimmed first, so "eur/usd" is accepted.
func ParsePair(s string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := Instruments[p]; !ok {
		return "", ErrUnknownInstrument
	}
	return p, nil
}
