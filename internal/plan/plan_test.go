package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNormalizes(t *testing.T) {
	for raw, want := range map[string]Plan{
		"FREE":     Free,
		"free":     Free,
		" Pro ":    Pro,
		"premium":  Premium,
		"PREMIUM ": Premium,
	} {
		got, ok := Parse(raw)
		assert.True(t, ok, "Parse(%q)", raw)
		assert.Equal(t, want, got)
	}

	_, ok := Parse("GOLD")
	assert.False(t, ok, "unknown plan must fail")
	_, ok = Parse("")
	assert.False(t, ok, "empty plan must fail")
}

func TestDailyLimits(t *testing.T) {
	assert.Equal(t, 100, Free.DailyLimit())
	assert.Equal(t, 5000, Pro.DailyLimit())
	assert.Equal(t, Unlimited, Premium.DailyLimit())
	assert.Equal(t, 100, Plan("BOGUS").DailyLimit(), "unknown plans fall back to the FREE limit")
}

func TestNamesCoversAllPlans(t *testing.T) {
	assert.ElementsMatch(t, []string{"FREE", "PRO", "PREMIUM"}, Names())
}
