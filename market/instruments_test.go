package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pair string
		want Class
	}{
		{"eurusd_standard", "EUR/USD", Standard},
		{"gbpchf_standard", "GBP/CHF", Standard},
		{"usdjpy_yen", "USD/JPY", Yen},
		{"eurjpy_yen", "EUR/JPY", Yen},
		{"chfjpy_yen", "CHF/JPY", Yen},
		{"gold_metal", "XAU/USD", Metal},
		{"silver_metal", "XAG/USD", Metal},
		// Metal check runs before the yen check.
		{"gold_jpy_metal", "XAU/JPY", Metal},
		{"silver_jpy_metal", "XAG/JPY", Metal},
		// Unknown pairs fall back to standard.
		{"unknown_standard", "ABC/XYZ", Standard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.pair))
		})
	}
}

func TestClassScaling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0001, Standard.PipSize())
	assert.Equal(t, 0.01, Yen.PipSize())
	assert.Equal(t, 0.1, Metal.PipSize())

	assert.Equal(t, float64(10000), Standard.PipMultiplier())
	assert.Equal(t, float64(100), Yen.PipMultiplier())
	assert.Equal(t, float64(10), Metal.PipMultiplier())

	assert.Equal(t, 5, Standard.DisplayDecimals())
	assert.Equal(t, 3, Yen.DisplayDecimals())
	assert.Equal(t, 5, Metal.DisplayDecimals())
}

func TestDollarPerPip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(10), DollarPerPip("EUR/USD"))
	assert.Equal(t, float64(7), DollarPerPip("USD/JPY"))
	assert.Equal(t, float64(7), DollarPerPip("GBP/JPY"))
	assert.Equal(t, float64(10), DollarPerPip("XAU/USD"))
	assert.Equal(t, float64(50), DollarPerPip("XAG/USD"))
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	p, err := ParsePair("eur/usd")
	assert.NoError(t, err)
	assert.Equal(t, "EUR/USD", p)

	p, err = ParsePair("  XAG/USD ")
	assert.NoError(t, err)
	assert.Equal(t, "XAG/USD", p)

	_, err = ParsePair("EUR/XYZ")
	assert.ErrorIs(t, err, ErrUnknownInstrument)
}

func TestInstrumentUniverse(t *testing.T) {
	t.Parallel()

	assert.Len(t, Instruments, 24)
	assert.Equal(t, "EUR", Instruments["EUR/USD"].BaseCurrency)
	assert.Equal(t, "USD", Instruments["EUR/USD"].QuoteCurrency)

	pairs := Pairs()
	assert.Len(t, pairs, 24)
	for i := 1; i < len(pairs); i++ {
		assert.Less(t, pairs[i-1], pairs[i])
	}
}
