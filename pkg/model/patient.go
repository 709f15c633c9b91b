package model

import "math"

// Patient mirrors the remote service's patient record. The six nivel_d*
// fields are barrier severity sub-scores; nivel_global is derived from them
// and recomputed client-side on every edit. The prediction fields are set
// exclusively by the remote prediction endpoint.
type Patient struct {
	ID                   int    `json:"id"`
	FullName             string `json:"nombre_apellidos"`
	BirthDate            string `json:"fecha_nacimiento"`
	Age                  int    `json:"edad"`
	Gender               string `json:"genero"`
	SexualOrientation    string `json:"orientacion_sexual"`
	DeficiencyCause      string `json:"causa_deficiencia"`
	PhysicalCategory     string `json:"cat_fisica"`
	PsychosocialCategory string `json:"cat_psicosocial"`
	LevelD1              int    `json:"nivel_d1"`
	LevelD2              int    `json:"nivel_d2"`
	LevelD3              int    `json:"nivel_d3"`
	LevelD4              int    `json:"nivel_d4"`
	LevelD5              int    `json:"nivel_d5"`
	LevelD6              int    `json:"nivel_d6"`
	GlobalLevel          int    `json:"nivel_global"`
	OwnerID              int    `json:"owner_id"`

	PredictionProfile     *int    `json:"prediction_profile"`
	PredictionDescription *string `json:"prediction_description"`
}

// PatientInput is the create/update shape accepted by the remote service.
// It excludes server-owned fields (id, owner, prediction results).
type PatientInput struct {
	FullName             string `json:"nombre_apellidos"`
	BirthDate            string `json:"fecha_nacimiento"`
	Age                  int    `json:"edad"`
	Gender               string `json:"genero"`
	SexualOrientation    string `json:"orientacion_sexual"`
	DeficiencyCause      string `json:"causa_deficiencia"`
	PhysicalCategory     string `json:"cat_fisica"`
	PsychosocialCategory string `json:"cat_psicosocial"`
	LevelD1              int    `json:"nivel_d1"`
	LevelD2              int    `json:"nivel_d2"`
	LevelD3              int    `json:"nivel_d3"`
	LevelD4              int    `json:"nivel_d4"`
	LevelD5              int    `json:"nivel_d5"`
	LevelD6              int    `json:"nivel_d6"`
	GlobalLevel          int    `json:"nivel_global"`
}

// GlobalLevel returns the rounded arithmetic mean of the six sub-scores.
func GlobalLevel(d1, d2, d3, d4, d5, d6 int) int {
	sum := d1 + d2 + d3 + d4 + d5 + d6
	return int(math.Round(float64(sum) / 6.0))
}

// Recompute refreshes GlobalLevel from the current sub-scores. Callers
// invoke it after any sub-score edit rather than trusting the stored value.
func (p *PatientInput) Recompute() {
	p.GlobalLevel = GlobalLevel(p.LevelD1, p.LevelD2, p.LevelD3, p.LevelD4, p.LevelD5, p.LevelD6)
}

// Levels returns the six sub-scores in order.
func (p Patient) Levels() [6]int {
	return [6]int{p.LevelD1, p.LevelD2, p.LevelD3, p.LevelD4, p.LevelD5, p.LevelD6}
}

// HasPrediction reports whether the remote prediction endpoint has been run
// for this patient. Value receiver so templates can call it on list items.
func (p Patient) HasPrediction() bool {
	return p.PredictionProfile != nil
}

// Input converts a stored patient back into the editable input shape,
// recomputing the derived global level.
func (p Patient) Input() PatientInput {
	in := PatientInput{
		FullName:             p.FullName,
		BirthDate:            p.BirthDate,
		Age:                  p.Age,
		Gender:               p.Gender,
		SexualOrientation:    p.SexualOrientation,
		DeficiencyCause:      p.DeficiencyCause,
		PhysicalCategory:     p.PhysicalCategory,
		PsychosocialCategory: p.PsychosocialCategory,
		LevelD1:              p.LevelD1,
		LevelD2:              p.LevelD2,
		LevelD3:              p.LevelD3,
		LevelD4:              p.LevelD4,
		LevelD5:              p.LevelD5,
		LevelD6:              p.LevelD6,
	}
	in.Recompute()
	return in
}
