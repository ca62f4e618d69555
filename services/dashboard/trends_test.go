package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend_ZeroBaseline(t *testing.T) {
	assert.Equal(t, "0%", Trend(0, 0))
	assert.Equal(t, "+100%", Trend(5, 0))
	assert.Equal(t, "+100%", Trend(0.5, 0))
}

func TestTrend_Growth(t *testing.T) {
	assert.Equal(t, "+100%", Trend(10, 5))
	assert.Equal(t, "+25%", Trend(125, 100))
}

func TestTrend_Decline(t *testing.T) {
	assert.Equal(t, "-50%", Trend(5, 10))
	assert.Equal(t, "-100%", Trend(0, 10))
}

func TestTrend_FlatKeepsPlusPrefix(t *testing.T) {
	// A non-negative change is always prefixed, flat days included. Only the
	// nothing-happened zero baseline renders without a sign.
	assert.Equal(t, "+0%", Trend(7, 7))
	assert.Equal(t, "+0%", Trend(100.2, 100))
	assert.Equal(t, "0%", Trend(0, 0))
}

func TestTrend_Rounding(t *testing.T) {
	// 1/3 growth rounds to +33%, 2/3 to +67%.
	assert.Equal(t, "+33%", Trend(4, 3))
	assert.Equal(t, "+67%", Trend(5, 3))
}
