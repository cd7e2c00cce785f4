package plan

import "strings"

// Plan is a user's subscription tier. It governs the daily metered-request
// quota.
type Plan string

const (
	Free    Plan = "FREE"
	Pro     Plan = "PRO"
	Premium Plan = "PREMIUM"
)

// Unlimited is the sentinel daily limit for plans with no quota.
const Unlimited = -1

var All = []Plan{Free, Pro, Premium}

var dailyLimits = map[Plan]int{
	Free:    100,
	Pro:     5000,
	Premium: Unlimited,
}

// Parse normalizes and validates a raw plan value.
func Parse(raw string) (Plan, bool) {
	p := Plan(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := dailyLimits[p]; !ok {
		return "", false
	}
	return p, true
}

// DailyLimit returns the plan's metered-request quota per calendar day.
// Unknown plans fall back to the FREE limit.
func (p Plan) DailyLimit() int {
	if limit, ok := dailyLimits[p]; ok {
		return limit
	}
	return dailyLimits[Free]
}

// Names lists the accepted plan values for error responses.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, p := range All {
		names = append(names, string(p))
	}
	return names
}
