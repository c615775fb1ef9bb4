package report

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/adicchain/internal/chain"
)

// To regenerate golden files, run:
//
//	go test ./internal/report -update
func TestTextObserver_Golden(t *testing.T) {
	tests := []struct {
		name   string
		n0     int64
		length int
	}{
		{"discovery_19084201", 19084201, chain.DefaultLength},
		{"discovery_76933159", 76933159, chain.DefaultLength},
		{"composite_start", 10, 5},
		{"invalid_residue", 5, 3},
		{"break_after_steps", 11, 7},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			obs := NewTextObserver(&buf)
			v := chain.Verifier{Observer: obs}

			_, err := v.Verify(big.NewInt(tt.n0), tt.length)
			require.NoError(t, err)
			require.NoError(t, obs.Err())

			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestTextObserver_GroupedDigits(t *testing.T) {
	var buf bytes.Buffer
	v := chain.Verifier{Observer: NewTextObserver(&buf, WithGroupedDigits())}

	_, err := v.Verify(big.NewInt(19084201), 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "n0 = 19,084,201 ===")
	assert.Contains(t, out, "Step 1: 22,901,041 -> PRIME")
	assert.Contains(t, out, "Chain: [19,084,201; 22,901,041]")
}

func TestTextObserver_GroupedDigitsHugeValue(t *testing.T) {
	// 2^100 = 1267650600228229401496703205376
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	var buf bytes.Buffer
	obs := NewTextObserver(&buf, WithGroupedDigits())
	obs.Observe(chain.Event{Kind: chain.EventStart, Value: huge})
	assert.Contains(t, buf.String(), "n0 = 1,267,650,600,228,229,401,496,703,205,376 ===")
}

func TestTextObserver_GroupedDigitsAcrossInt64(t *testing.T) {
	// 2^63 - 1 is formatted by the printer, 2^63 by groupDigits.
	maxInt64 := big.NewInt(9223372036854775807)
	past := new(big.Int).Add(maxInt64, big.NewInt(1))

	var buf bytes.Buffer
	obs := NewTextObserver(&buf, WithGroupedDigits())
	obs.Observe(chain.Event{Kind: chain.EventDone, Chain: []*big.Int{maxInt64, past}})
	assert.Contains(t, buf.String(), "Chain: [9,223,372,036,854,775,807; 9,223,372,036,854,775,808]")
}

func TestGroupDigits(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"999":        "999",
		"1000":       "1,000",
		"123456":     "123,456",
		"1234567":    "1,234,567",
		"-12345678":  "-12,345,678",
		"9999999999": "9,999,999,999",
	}
	for in, want := range tests {
		assert.Equal(t, want, groupDigits(in), "groupDigits(%q)", in)
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestTextObserver_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	obs := NewTextObserver(w)
	v := chain.Verifier{Observer: obs}

	chainVals, err := v.Verify(big.NewInt(19084201), 3)
	require.NoError(t, err, "report failures never affect verification")
	assert.Len(t, chainVals, 3)
	assert.EqualError(t, obs.Err(), "disk full")
	assert.Equal(t, 1, w.writes)
}
