package ui

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/me/clinidash/pkg/model"
)

// makeTestToken builds an unsigned JWT with the given claims. Tokens are
// decoded, never verified, so a fake signature segment is enough.
func makeTestToken(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal claims: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := enc(map[string]any{"sub": sub, "role": role, "exp": exp.Unix()})
	return header + "." + payload + ".x"
}

func TestHandleLoginPost_CreatesSessionAndRedirects(t *testing.T) {
	token := ""
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil || r.FormValue("username") != "dr.garcia@clinic.example" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)
	token = makeTestToken(t, "dr.garcia@clinic.example", "médico", time.Now().Add(time.Hour))

	form := url.Values{"email": {"dr.garcia@clinic.example"}, "password": {"secret"}}
	r := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	u.HandleLoginPost(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("Location = %q, want /", loc)
	}

	var sessCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			sessCookie = c
		}
	}
	if sessCookie == nil || sessCookie.Value == "" {
		t.Fatal("no session cookie set")
	}
	if !sessCookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	sess, err := u.sessions.GetSession(t.Context(), sessCookie.Value)
	if err != nil || sess == nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if sess.Token != token {
		t.Error("session token does not match issued token")
	}
	if sess.Role != model.RolePractitioner {
		t.Errorf("Role = %q, want practitioner", sess.Role)
	}
}

func TestHandleLoginPost_FailureLeavesNoSession(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)

	form := url.Values{"email": {"dr.garcia@clinic.example"}, "password": {"wrong"}}
	r := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	u.HandleLoginPost(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?error=") {
		t.Errorf("Location = %q, want /login?error=...", loc)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			t.Error("failed login must not set a session cookie")
		}
	}
}

func TestRejectedTokenTearsDownSession(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)
	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "stale-token", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	u.AuthMiddleware(http.HandlerFunc(u.HandleDashboard)).ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("Location = %q, want /login...", loc)
	}

	// The backing session row must be gone so the stale token cannot
	// serve another page view.
	if got, _ := u.sessions.GetSession(t.Context(), sess.ID); got != nil {
		t.Error("session row survived a 401 from the remote service")
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie was not cleared")
	}
}

func TestHandleDashboard_RendersStats(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		patients := []model.Patient{
			{ID: 1, FullName: "Ana Pérez", Gender: "Femenino", LevelD1: 2, GlobalLevel: 2},
			{ID: 2, FullName: "Luis Gómez", Gender: "Masculino"},
		}
		json.NewEncoder(w).Encode(patients)
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)
	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	u.AuthMiddleware(http.HandlerFunc(u.HandleDashboard)).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Ana Pérez") {
		t.Error("recent patients missing from dashboard")
	}
	if !strings.Contains(body, "Total Patients") {
		t.Error("expected English labels for default language")
	}
}

func TestHandlePatientCreate_RecomputesGlobalLevel(t *testing.T) {
	var received model.PatientInput
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(model.Patient{ID: 7, FullName: received.FullName})
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)
	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	form := url.Values{
		"nombre_apellidos": {"Ana Pérez"},
		"genero":           {"Femenino"},
		"edad":             {"34"},
		"nivel_d1":         {"2"},
		"nivel_d2":         {"4"},
		"nivel_d3":         {"0"},
		"nivel_d4":         {"8"},
		"nivel_d5":         {"10"},
		"nivel_d6":         {"12"},
	}
	r := httptest.NewRequest("POST", "/patients", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	u.AuthMiddleware(http.HandlerFunc(u.HandlePatientCreate)).ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body: %s", w.Code, w.Body.String())
	}
	if received.GlobalLevel != 6 { // round((2+4+0+8+10+12)/6)
		t.Errorf("submitted nivel_global = %d, want 6", received.GlobalLevel)
	}
	if received.FullName != "Ana Pérez" {
		t.Errorf("FullName = %q", received.FullName)
	}
}

func TestHandleLogout_Idempotent(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")
	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest("GET", "/logout", nil)
		if i == 0 {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
		}
		w := httptest.NewRecorder()
		u.HandleLogout(w, r)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("logout %d: status = %d, want 303", i, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("logout %d: Location = %q, want /login", i, loc)
		}
	}

	if got, _ := u.sessions.GetSession(t.Context(), sess.ID); got != nil {
		t.Error("session survived logout")
	}
}

func TestHandleSettingsLanguage_PersistsChoice(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")
	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	form := url.Values{"language": {"es"}}
	r := httptest.NewRequest("POST", "/settings/language", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	u.AuthMiddleware(http.HandlerFunc(u.HandleSettingsLanguage)).ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	got, err := u.sessions.GetSession(t.Context(), sess.ID)
	if err != nil || got == nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Lang != "es" {
		t.Errorf("session Lang = %q, want es", got.Lang)
	}

	// Subsequent pages render in Spanish.
	r = httptest.NewRequest("GET", "/settings", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	w = httptest.NewRecorder()
	u.AuthMiddleware(http.HandlerFunc(u.HandleSettings)).ServeHTTP(w, r)

	if !strings.Contains(w.Body.String(), "Idioma") {
		t.Error("settings page not rendered in Spanish after switch")
	}
}

func TestHandleLoginPost_RateLimited(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	defer remote.Close()

	u := newTestUI(t, remote.URL)
	u.limiter.Stop()
	u.limiter = newLoginLimiter(2)
	t.Cleanup(u.limiter.Stop)

	limited := false
	for i := 0; i < 5; i++ {
		form := url.Values{"email": {"x@clinic.example"}, "password": {fmt.Sprintf("wrong%d", i)}}
		r := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		u.HandleLoginPost(w, r)

		if strings.Contains(w.Header().Get("Location"), "Too+many") {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("burst of failed logins was never rate limited")
	}
}
