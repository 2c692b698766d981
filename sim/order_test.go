package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Queries(t *testing.T) {
	tests := []struct {
		name     string
		order    Order
		kind     Kind
		contains bool
		count    int
		best     Kind
		singles  int
	}{
		{"three of a kind", NewOrder(MMM, MMM, MMM), MMM, true, 3, MMM, 3},
		{"absent kind", NewOrder(MMA, AAL, LLM), MAL, false, 0, LLM, 0},
		{"special twice", NewOrder(MAL, AAA, MAL), MAL, true, 2, MAL, 1},
		{"best in first slot", NewOrder(LLM, AAA, MMM), AAA, true, 1, LLM, 2},
		{"ties on best", NewOrder(MML, MML, AAM), MML, true, 2, MML, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, tt.order.Contains(tt.kind))
			assert.Equal(t, tt.count, tt.order.Count(tt.kind))
			assert.Equal(t, tt.best, tt.order.Best())
			assert.Equal(t, tt.singles, tt.order.SingleAxisCount())
		})
	}
}

func TestOrder_CountsSumToThree(t *testing.T) {
	o := NewOrder(AAL, MAL, AAL)
	total := 0
	for _, k := range Kinds() {
		total += o.Count(k)
	}
	assert.Equal(t, SlotsPerOrder, total)
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("(MMM, aal,MAL)")
	require.NoError(t, err)
	assert.Equal(t, NewOrder(MMM, AAL, MAL), o)
	assert.Equal(t, "(MMM,AAL,MAL)", o.String())

	_, err = ParseOrder("MMM,AAL")
	assert.Error(t, err)
	_, err = ParseOrder("MMM,AAL,QQQ")
	assert.Error(t, err)
}
