package analysis

import (
	"reflect"
	"testing"

	"github.com/emilianohg/daylog/internal/models"
)

func entry(category string, minutes int) models.Entry {
	return models.Entry{Category: category, DurationMinutes: minutes}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got.Categories == nil || got.Insights == nil {
		t.Fatalf("Aggregate(nil) returned nil slices: %+v", got)
	}
	if len(got.Categories) != 0 || len(got.Insights) != 0 {
		t.Errorf("Aggregate(nil) = %+v, want empty", got)
	}
}

func TestAggregateRules(t *testing.T) {
	tests := []struct {
		name     string
		entries  []models.Entry
		wantAgg  []models.CategoryAggregate
		insights []string
	}{
		{
			name:     "overwork",
			entries:  []models.Entry{entry("Work", 650)},
			wantAgg:  []models.CategoryAggregate{{Category: "Work", TotalMinutes: 650, PercentageOfDay: "45.1"}},
			insights: []string{"Consider reducing work time (10h) for better work-life balance"},
		},
		{
			name:     "work at threshold",
			entries:  []models.Entry{entry("Work", 600)},
			wantAgg:  []models.CategoryAggregate{{Category: "Work", TotalMinutes: 600, PercentageOfDay: "41.7"}},
			insights: []string{},
		},
		{
			name:     "little family time",
			entries:  []models.Entry{entry("Family Time", 90)},
			wantAgg:  []models.CategoryAggregate{{Category: "Family Time", TotalMinutes: 90, PercentageOfDay: "6.3"}},
			insights: []string{"Try to increase family time to at least 2 hours per day"},
		},
		{
			name:     "enough family time",
			entries:  []models.Entry{entry("family", 60), entry("family", 60)},
			wantAgg:  []models.CategoryAggregate{{Category: "family", TotalMinutes: 120, PercentageOfDay: "8.3"}},
			insights: []string{},
		},
		{
			name:     "chores",
			entries:  []models.Entry{entry("Chores", 200)},
			wantAgg:  []models.CategoryAggregate{{Category: "Chores", TotalMinutes: 200, PercentageOfDay: "13.9"}},
			insights: []string{"Look for ways to optimize chores routine"},
		},
		{
			name:     "hygiene",
			entries:  []models.Entry{entry("Personal Hygiene", 181)},
			wantAgg:  []models.CategoryAggregate{{Category: "Personal Hygiene", TotalMinutes: 181, PercentageOfDay: "12.6"}},
			insights: []string{"Look for ways to optimize personal hygiene routine"},
		},
		{
			name:    "family rule on a mixed category",
			entries: []models.Entry{entry("Family work", 30)},
			wantAgg: []models.CategoryAggregate{{Category: "Family work", TotalMinutes: 30, PercentageOfDay: "2.1"}},
			insights: []string{
				"Try to increase family time to at least 2 hours per day",
			},
		},
		{
			name:    "work and chores both over",
			entries: []models.Entry{entry("work chores", 700)},
			wantAgg: []models.CategoryAggregate{{Category: "work chores", TotalMinutes: 700, PercentageOfDay: "48.6"}},
			insights: []string{
				"Consider reducing work time (11h) for better work-life balance",
				"Look for ways to optimize work chores routine",
			},
		},
		{
			name:    "case sensitive buckets",
			entries: []models.Entry{entry("Work", 610), entry("work", 620)},
			wantAgg: []models.CategoryAggregate{
				{Category: "Work", TotalMinutes: 610, PercentageOfDay: "42.4"},
				{Category: "work", TotalMinutes: 620, PercentageOfDay: "43.1"},
			},
			insights: []string{
				"Consider reducing work time (10h) for better work-life balance",
				"Consider reducing work time (10h) for better work-life balance",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.entries)
			if !reflect.DeepEqual(got.Categories, tt.wantAgg) {
				t.Errorf("categories = %+v, want %+v", got.Categories, tt.wantAgg)
			}
			if !reflect.DeepEqual(got.Insights, tt.insights) {
				t.Errorf("insights = %q, want %q", got.Insights, tt.insights)
			}
		})
	}
}

func TestAggregateFirstAppearanceOrder(t *testing.T) {
	entries := []models.Entry{
		entry("Sleep", 480),
		entry("Work", 240),
		entry("Chores", 30),
		entry("Work", 240),
		entry("Sleep", 30),
		entry("Family", 60),
	}
	got := Aggregate(entries)

	want := []string{"Sleep", "Work", "Chores", "Family"}
	if len(got.Categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got.Categories), len(want))
	}
	for i, c := range got.Categories {
		if c.Category != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, c.Category, want[i])
		}
	}
	if got.Categories[0].TotalMinutes != 510 || got.Categories[1].TotalMinutes != 480 {
		t.Errorf("totals = %+v", got.Categories)
	}
}

func TestAggregateTotalsIgnoreOrder(t *testing.T) {
	entries := []models.Entry{
		entry("Work", 300),
		entry("Family", 45),
		entry("Work", 400),
		entry("Hygiene", 100),
		entry("Family", 30),
		entry("Hygiene", 90),
	}
	reversed := make([]models.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	totals := func(a models.Analysis) map[string]int {
		m := make(map[string]int)
		for _, c := range a.Categories {
			m[c.Category] = c.TotalMinutes
		}
		return m
	}
	if a, b := totals(Aggregate(entries)), totals(Aggregate(reversed)); !reflect.DeepEqual(a, b) {
		t.Errorf("totals differ after permutation: %v vs %v", a, b)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	entries := []models.Entry{entry("Work", 650), entry("Family", 10), entry("Chores", 200)}
	first := Aggregate(entries)
	second := Aggregate(entries)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Aggregate not idempotent: %+v vs %+v", first, second)
	}
}

func TestPercentageOfDay(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0.0"},
		{1440, "100.0"},
		{720, "50.0"},
		{2880, "200.0"},
		{1, "0.1"},
		{18, "1.3"},
		{90, "6.3"},
		{414, "28.8"},
		{-90, "-6.3"},
		{-5, "-0.3"},
		{-1, "-0.1"},
	}
	for _, tt := range tests {
		if got := PercentageOfDay(tt.minutes); got != tt.want {
			t.Errorf("PercentageOfDay(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
