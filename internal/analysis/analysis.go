package analysis

import (
	"fmt"
	"strings"

	"github.com/emilianohg/daylog/internal/models"
)

const (
	MinutesPerDay = 1440

	overworkMinutes   = 600
	minFamilyMinutes  = 120
	maxRoutineMinutes = 180
)

// rule produces at most one insight for a category total.
type rule func(category string, totalMinutes int) (string, bool)

// Rules are evaluated in this order for every category.
var rules = []rule{
	overwork,
	underFamily,
	overRoutine,
}

func overwork(category string, total int) (string, bool) {
	if strings.Contains(strings.ToLower(category), "work") && total > overworkMinutes {
		return fmt.Sprintf("Consider reducing work time (%dh) for better work-life balance", total/60), true
	}
	return "", false
}

func underFamily(category string, total int) (string, bool) {
	if strings.Contains(strings.ToLower(category), "family") && total < minFamilyMinutes {
		return "Try to increase family time to at least 2 hours per day", true
	}
	return "", false
}

func overRoutine(category string, total int) (string, bool) {
	lower := strings.ToLower(category)
	if (strings.Contains(lower, "chores") || strings.Contains(lower, "hygiene")) && total > maxRoutineMinutes {
		return fmt.Sprintf("Look for ways to optimize %s routine", lower), true
	}
	return "", false
}

// Aggregate sums durations per category over every entry it is given, in the
// order each category first appears, and evaluates the insight rules on the
// totals. Categories are grouped by exact string.
func Aggregate(entries []models.Entry) models.Analysis {
	groups := newOrderedTotals()
	for _, e := range entries {
		groups.add(e.Category, e.DurationMinutes)
	}

	result := models.Analysis{
		Categories: make([]models.CategoryAggregate, 0, len(groups.keys)),
		Insights:   []string{},
	}
	for _, category := range groups.keys {
		total := groups.totals[category]
		result.Categories = append(result.Categories, models.CategoryAggregate{
			Category:        category,
			TotalMinutes:    total,
			PercentageOfDay: PercentageOfDay(total),
		})
		for _, r := range rules {
			if msg, ok := r(category, total); ok {
				result.Insights = append(result.Insights, msg)
			}
		}
	}
	return result
}

// PercentageOfDay formats total/1440 as a percentage with one decimal.
// Exact ties round away from zero: 18 minutes is 1.25% and renders as "1.3".
func PercentageOfDay(totalMinutes int) string {
	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	tenths := (totalMinutes*2000 + MinutesPerDay) / (2 * MinutesPerDay)
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

type orderedTotals struct {
	keys   []string
	totals map[string]int
}

func newOrderedTotals() *orderedTotals {
	return &orderedTotals{totals: make(map[string]int)}
}

func (o *orderedTotals) add(key string, minutes int) {
	if _, seen := o.totals[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.totals[key] += minutes
}
