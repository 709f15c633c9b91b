package model

import "testing"

func TestGlobalLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels [6]int
		want   int
	}{
		{"all zero", [6]int{0, 0, 0, 0, 0, 0}, 0},
		{"exact mean", [6]int{2, 4, 6, 8, 10, 12}, 7},
		{"rounds up", [6]int{1, 1, 1, 1, 1, 4}, 2},   // mean 1.5
		{"rounds down", [6]int{1, 1, 1, 1, 1, 3}, 1}, // mean 1.33
		{"uniform", [6]int{3, 3, 3, 3, 3, 3}, 3},
		{"high end", [6]int{4, 4, 4, 4, 4, 3}, 4}, // mean 3.83
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.levels
			got := GlobalLevel(d[0], d[1], d[2], d[3], d[4], d[5])
			if got != tt.want {
				t.Errorf("GlobalLevel(%v) = %d, want %d", tt.levels, got, tt.want)
			}
		})
	}
}

func TestPatientInput_Recompute(t *testing.T) {
	in := PatientInput{LevelD1: 2, LevelD2: 4, LevelD3: 6, LevelD4: 8, LevelD5: 10, LevelD6: 12}
	in.Recompute()
	if in.GlobalLevel != 7 {
		t.Fatalf("GlobalLevel = %d, want 7", in.GlobalLevel)
	}

	// Editing a single sub-score must yield the correct value without
	// re-entering the others.
	in.LevelD3 = 0
	in.Recompute()
	if in.GlobalLevel != 6 { // (2+4+0+8+10+12)/6 = 6
		t.Errorf("GlobalLevel after edit = %d, want 6", in.GlobalLevel)
	}
}

func TestPatient_Input_RefreshesDerivedLevel(t *testing.T) {
	p := Patient{
		LevelD1: 1, LevelD2: 1, LevelD3: 1, LevelD4: 1, LevelD5: 1, LevelD6: 1,
		GlobalLevel: 99, // stale derived state must not be trusted
	}
	in := p.Input()
	if in.GlobalLevel != 1 {
		t.Errorf("Input().GlobalLevel = %d, want 1", in.GlobalLevel)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"médico", RolePractitioner},
		{"medico", RolePractitioner},
		{"practitioner", RolePractitioner},
		{"", RolePractitioner},
		{"something-else", RolePractitioner},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRole_WireValue(t *testing.T) {
	if got := RoleAdmin.WireValue(); got != "admin" {
		t.Errorf("admin wire value = %q", got)
	}
	if got := RolePractitioner.WireValue(); got != "médico" {
		t.Errorf("practitioner wire value = %q", got)
	}
}

func TestIdentityForEmail(t *testing.T) {
	id := IdentityForEmail("doctor@example.com", "")
	if id.Email != "doctor@example.com" {
		t.Errorf("Email = %q", id.Email)
	}
	if id.Name != "doctor" {
		t.Errorf("Name = %q, want %q", id.Name, "doctor")
	}
	if id.Role != RolePractitioner {
		t.Errorf("Role = %q, want practitioner default", id.Role)
	}

	admin := IdentityForEmail("root@clinic.org", "admin")
	if admin.Role != RoleAdmin {
		t.Errorf("Role = %q, want admin", admin.Role)
	}
}
