package cli

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startFakeService stands in for the remote assessment service.
func startFakeService(t *testing.T) string {
	t.Helper()

	token := makeToken(t, "dr.garcia@clinic.example", "médico")
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.FormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
	})
	mux.HandleFunc("GET /patients/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nombre_apellidos": "Ana Pérez", "edad": 34, "genero": "Femenino", "nivel_global": 2},
		})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL
}

func makeToken(t *testing.T, sub, role string) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal claims: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := enc(map[string]any{"sub": sub, "role": role, "exp": time.Now().Add(time.Hour).Unix()})
	return header + "." + payload + ".x"
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestLoginThenList(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startFakeService(t)

	err := runCommand(t, "--api-url", url,
		"login", "--email", "dr.garcia@clinic.example", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// The session must be persisted for the next invocation.
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".clinidash")); err != nil {
		t.Fatalf("session directory not created: %v", err)
	}

	if err := runCommand(t, "--api-url", url, "patients", "list"); err != nil {
		t.Fatalf("patients list: %v", err)
	}
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startFakeService(t)

	err := runCommand(t, "--api-url", url,
		"login", "--email", "dr.garcia@clinic.example", "--password", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}

	if err := runCommand(t, "--api-url", url, "patients", "list"); err == nil {
		t.Fatal("expected 'not logged in' error after failed login")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startFakeService(t)

	for i := 0; i < 2; i++ {
		if err := runCommand(t, "--api-url", url, "logout"); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
	}
}

func TestReadPatientInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patient.json")
	record := `{"nombre_apellidos":"Ana Pérez","edad":34,"nivel_d1":2,"nivel_d2":4,"nivel_d3":0,"nivel_d4":8,"nivel_d5":10,"nivel_d6":12,"nivel_global":99}`
	if err := os.WriteFile(path, []byte(record), 0600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	in, err := readPatientInput(path)
	if err != nil {
		t.Fatalf("readPatientInput: %v", err)
	}
	if in.FullName != "Ana Pérez" {
		t.Errorf("FullName = %q", in.FullName)
	}
	// The stale stored global level is never trusted.
	if in.GlobalLevel != 6 {
		t.Errorf("GlobalLevel = %d, want 6", in.GlobalLevel)
	}
}

func TestReadPatientInput_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patient.json")
	if err := os.WriteFile(path, []byte(`{"edad":34}`), 0600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	if _, err := readPatientInput(path); err == nil {
		t.Fatal("expected error for missing nombre_apellidos")
	}
}
