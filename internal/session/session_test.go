package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/pkg/model"
)

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal segment: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return enc(map[string]string{"alg": "none", "typ": "JWT"}) + "." + enc(claims) + "."
}

// newTestStore wires a Store against an httptest remote service.
func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, *api.Client, *MemStorage, *[]string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.New(api.Config{BaseURL: srv.URL}, nil)
	storage := &MemStorage{}
	var routes []string
	store := New(client, storage, func(route string) { routes = append(routes, route) }, nil)
	return store, client, storage, &routes
}

func loginHandler(t *testing.T, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/login":
			json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
		default:
			http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
		}
	}
}

func TestStore_LoginPersistsBeforeNavigation(t *testing.T) {
	token := makeToken(t, map[string]any{"sub": "doctor@example.com"})

	srv := httptest.NewServer(loginHandler(t, token))
	defer srv.Close()

	client := api.New(api.Config{BaseURL: srv.URL}, nil)
	storage := &MemStorage{}

	var persistedAtNavigation bool
	var landed string
	store := New(client, storage, func(route string) {
		_, _, persistedAtNavigation = storage.Load()
		landed = route
	}, nil)

	if err := store.Login(context.Background(), "doctor@example.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !persistedAtNavigation {
		t.Error("session was not persisted before navigation")
	}
	if landed != RouteDashboard {
		t.Errorf("navigated to %q, want %q", landed, RouteDashboard)
	}

	sess := store.Current()
	if sess == nil {
		t.Fatal("no active session after login")
	}
	if sess.Identity.Role != model.RolePractitioner {
		t.Errorf("role = %q, want practitioner default", sess.Identity.Role)
	}
	if client.Token() != token {
		t.Error("client token not installed")
	}
}

func TestStore_LoginFailureLeavesStateUntouched(t *testing.T) {
	store, client, storage, routes := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusUnauthorized)
	})

	err := store.Login(context.Background(), "doctor@example.com", "wrong")
	if !api.IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if store.Authenticated() {
		t.Error("session active after failed login")
	}
	if client.Token() != "" {
		t.Error("token set after failed login")
	}
	if _, _, ok := storage.Load(); ok {
		t.Error("storage written after failed login")
	}
	if len(*routes) != 0 {
		t.Errorf("unexpected navigation %v", *routes)
	}
}

func TestStore_RestoreRequiresBothEntries(t *testing.T) {
	// Full pair restores.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := api.New(api.Config{BaseURL: srv.URL}, nil)
	storage := &MemStorage{}
	storage.Save("tok-1", model.IdentityForEmail("doctor@example.com", "admin"))

	store := New(client, storage, nil, nil)
	store.Restore()

	sess := store.Current()
	if sess == nil {
		t.Fatal("expected restored session")
	}
	if sess.Token != "tok-1" || sess.Identity.Role != model.RoleAdmin {
		t.Errorf("restored session = %+v", sess)
	}
	if client.Token() != "tok-1" {
		t.Error("client token not restored")
	}
}

func TestStore_RestoreTreatsPartialStateAsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	cases := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{"token without identity", func(t *testing.T, dir string) {
			if err := os.WriteFile(filepath.Join(dir, tokenFileName), []byte("orphan-token"), 0o600); err != nil {
				t.Fatal(err)
			}
		}},
		{"identity without token", func(t *testing.T, dir string) {
			raw, _ := json.Marshal(model.IdentityForEmail("doctor@example.com", ""))
			if err := os.WriteFile(filepath.Join(dir, identityFileName), raw, 0o600); err != nil {
				t.Fatal(err)
			}
		}},
		{"corrupt identity", func(t *testing.T, dir string) {
			if err := os.WriteFile(filepath.Join(dir, tokenFileName), []byte("tok"), 0o600); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, identityFileName), []byte("{not json"), 0o600); err != nil {
				t.Fatal(err)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			tc.setup(t, dir)

			client := api.New(api.Config{BaseURL: srv.URL}, nil)
			store := New(client, NewFileStorage(dir), nil, nil)
			store.Restore()

			if store.Authenticated() {
				t.Error("partial persisted state restored a session")
			}
			if client.Token() != "" {
				t.Error("client token set from partial state")
			}
			// Restore drops leftovers; a second load must see nothing.
			if _, _, ok := NewFileStorage(dir).Load(); ok {
				t.Error("partial state survives Restore")
			}
		})
	}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".clinidash")
	fs := NewFileStorage(dir)

	if _, _, ok := fs.Load(); ok {
		t.Fatal("empty storage reports a session")
	}
	if err := fs.Clear(); err != nil {
		t.Fatalf("clear on empty storage: %v", err)
	}

	id := model.IdentityForEmail("admin@example.com", "admin")
	if err := fs.Save("tok-99", id); err != nil {
		t.Fatalf("save: %v", err)
	}
	tok, got, ok := fs.Load()
	if !ok {
		t.Fatal("saved session did not load")
	}
	if tok != "tok-99" || got != id {
		t.Errorf("loaded (%q, %+v), want (%q, %+v)", tok, got, "tok-99", id)
	}

	if err := fs.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, _, ok := fs.Load(); ok {
		t.Error("cleared session still loads")
	}
}

func TestStore_LogoutIsIdempotent(t *testing.T) {
	store, client, storage, routes := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {})

	// Logged out already: no-op, no navigation, no error.
	store.Logout()
	if len(*routes) != 0 {
		t.Errorf("logout from logged-out state navigated: %v", *routes)
	}

	// Log in, then log out twice.
	token := makeToken(t, map[string]any{"sub": "doctor@example.com"})
	storage.Save(token, model.IdentityForEmail("doctor@example.com", ""))
	store.Restore()

	store.Logout()
	store.Logout()

	if store.Authenticated() {
		t.Error("session still active after logout")
	}
	if client.Token() != "" {
		t.Error("client token survives logout")
	}
	if _, _, ok := storage.Load(); ok {
		t.Error("persisted session survives logout")
	}
	if got := len(*routes); got != 1 {
		t.Errorf("navigated %d times, want 1", got)
	}
}

func TestStore_UnauthorizedTearsDownSession(t *testing.T) {
	// Any authenticated call receiving a 401 must leave the session empty
	// and the active route at login, regardless of the caller.
	token := makeToken(t, map[string]any{"sub": "doctor@example.com"})

	store, client, storage, routes := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	})
	storage.Save(token, model.IdentityForEmail("doctor@example.com", ""))
	store.Restore()
	*routes = nil

	_, err := client.UpdatePatient(context.Background(), 42, model.PatientInput{FullName: "edited"})
	if !api.IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}

	if store.Authenticated() {
		t.Error("session survives a 401")
	}
	if client.Token() != "" {
		t.Error("token survives a 401")
	}
	if _, _, ok := storage.Load(); ok {
		t.Error("persisted session survives a 401")
	}
	if len(*routes) == 0 || (*routes)[len(*routes)-1] != RouteLogin {
		t.Errorf("routes = %v, want final %q", *routes, RouteLogin)
	}
}

func TestStore_ExpireAfterLogoutIsSafe(t *testing.T) {
	// The 401 teardown must tolerate a session already cleared by logout.
	token := makeToken(t, map[string]any{"sub": "doctor@example.com"})

	store, client, storage, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusUnauthorized)
	})
	storage.Save(token, model.IdentityForEmail("doctor@example.com", ""))
	store.Restore()

	store.Logout()
	if _, err := client.GetPatient(context.Background(), 1); !api.IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if store.Authenticated() {
		t.Error("session resurrected by redundant expiry")
	}
}
