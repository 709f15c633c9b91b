package ui

import (
	"math"

	"github.com/me/clinidash/pkg/model"
)

// Analytics aggregates an already-fetched patient list for the analytics
// and dashboard pages. All numbers are computed locally; nothing here
// queries the remote service.
type Analytics struct {
	TotalPatients      int
	ActiveCases        int // patients with any nonzero barrier score
	Predicted          int // patients with a prediction result
	PredictedPercent   int
	AverageGlobalLevel float64
	GenderCounts       map[string]int
	ProfileCounts      map[int]int
	LevelAverages      [6]float64 // mean per barrier dimension d1..d6
}

// ComputeAnalytics aggregates the given patients.
func ComputeAnalytics(patients []model.Patient) Analytics {
	a := Analytics{
		TotalPatients: len(patients),
		GenderCounts:  make(map[string]int),
		ProfileCounts: make(map[int]int),
	}
	if len(patients) == 0 {
		return a
	}

	var globalSum int
	var levelSums [6]int
	for _, p := range patients {
		if p.GlobalLevel > 0 {
			a.ActiveCases++
		}
		if p.HasPrediction() {
			a.Predicted++
			a.ProfileCounts[*p.PredictionProfile]++
		}
		if p.Gender != "" {
			a.GenderCounts[p.Gender]++
		}
		globalSum += p.GlobalLevel
		for i, lvl := range p.Levels() {
			levelSums[i] += lvl
		}
	}

	n := float64(len(patients))
	a.AverageGlobalLevel = round2(float64(globalSum) / n)
	for i, sum := range levelSums {
		a.LevelAverages[i] = round2(float64(sum) / n)
	}
	a.PredictedPercent = (a.Predicted * 100) / len(patients)
	return a
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
