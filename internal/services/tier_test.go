package services

import (
	"testing"

	"ai-quiz-backend/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score, max int
		want       models.Tier
	}{
		{10, 10, models.TierExcellent},
		{8, 10, models.TierExcellent},
		{4, 5, models.TierExcellent},
		{79999, 100000, models.TierPass},
		{6, 10, models.TierPass},
		{3, 5, models.TierPass},
		{59999, 100000, models.TierFail},
		{0, 10, models.TierFail},
		{5, 0, models.TierFail},
		{0, 0, models.TierFail},
	}
	for _, tt := range tests {
		if got := Classify(tt.score, tt.max); got != tt.want {
			t.Errorf("Classify(%d, %d) = %v, want %v", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestClassifyMonotonic(t *testing.T) {
	for max := 1; max <= 20; max++ {
		prev := models.TierFail
		for score := 0; score <= max; score++ {
			got := Classify(score, max)
			if got < prev {
				t.Fatalf("Classify(%d, %d) = %v dropped below %v", score, max, got, prev)
			}
			prev = got
		}
	}
}

func TestAggregate(t *testing.T) {
	E, P, F := models.TierExcellent, models.TierPass, models.TierFail
	tests := []struct {
		in   []models.Tier
		want models.Tier
	}{
		{[]models.Tier{E, E}, E},
		{[]models.Tier{E, P}, P},
		{[]models.Tier{P, E, P}, P},
		{[]models.Tier{E, F}, F},
		{[]models.Tier{P, F}, F},
		{[]models.Tier{E}, E},
		{nil, F},
	}
	for _, tt := range tests {
		got := Aggregate(tt.in...)
		if got != tt.want {
			t.Errorf("Aggregate(%v) = %v, want %v", tt.in, got, tt.want)
		}
		for _, g := range tt.in {
			if got > g {
				t.Errorf("Aggregate(%v) = %v is better than member %v", tt.in, got, g)
			}
		}
	}
}
