package ui

import (
	"testing"

	"github.com/me/clinidash/pkg/model"
)

func intp(v int) *int { return &v }

func TestComputeAnalytics(t *testing.T) {
	patients := []model.Patient{
		{FullName: "A", Gender: "Femenino", LevelD1: 2, LevelD2: 4, GlobalLevel: 1, PredictionProfile: intp(3)},
		{FullName: "B", Gender: "Masculino", LevelD1: 4, LevelD2: 0, GlobalLevel: 1, PredictionProfile: intp(3)},
		{FullName: "C", Gender: "Femenino"},
		{FullName: "D", Gender: "Masculino", LevelD1: 6, GlobalLevel: 1, PredictionProfile: intp(1)},
	}

	a := ComputeAnalytics(patients)

	if a.TotalPatients != 4 {
		t.Errorf("TotalPatients = %d, want 4", a.TotalPatients)
	}
	if a.ActiveCases != 3 {
		t.Errorf("ActiveCases = %d, want 3", a.ActiveCases)
	}
	if a.Predicted != 3 {
		t.Errorf("Predicted = %d, want 3", a.Predicted)
	}
	if a.PredictedPercent != 75 {
		t.Errorf("PredictedPercent = %d, want 75", a.PredictedPercent)
	}
	if a.GenderCounts["Femenino"] != 2 || a.GenderCounts["Masculino"] != 2 {
		t.Errorf("GenderCounts = %v", a.GenderCounts)
	}
	if a.ProfileCounts[3] != 2 || a.ProfileCounts[1] != 1 {
		t.Errorf("ProfileCounts = %v", a.ProfileCounts)
	}
	if a.LevelAverages[0] != 3 { // (2+4+0+6)/4
		t.Errorf("LevelAverages[0] = %v, want 3", a.LevelAverages[0])
	}
	if a.LevelAverages[1] != 1 { // (4+0+0+0)/4
		t.Errorf("LevelAverages[1] = %v, want 1", a.LevelAverages[1])
	}
	if a.AverageGlobalLevel != 0.75 {
		t.Errorf("AverageGlobalLevel = %v, want 0.75", a.AverageGlobalLevel)
	}
}

func TestComputeAnalytics_Empty(t *testing.T) {
	a := ComputeAnalytics(nil)
	if a.TotalPatients != 0 || a.PredictedPercent != 0 || a.AverageGlobalLevel != 0 {
		t.Errorf("empty analytics not zero: %+v", a)
	}
	if a.GenderCounts == nil || a.ProfileCounts == nil {
		t.Error("maps must be non-nil for template ranging")
	}
}
