package ui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/pkg/model"
)

func newTestUI(t *testing.T, remoteURL string) *UI {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u := New(setupTestStore(t), api.Config{BaseURL: remoteURL, Timeout: 5 * time.Second}, logger, Config{
		DefaultLanguage: "en",
		LoginRatePerMin: 1000,
	})
	t.Cleanup(u.Close)
	return u
}

func okHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestAuthMiddleware_RedirectsWithoutSession(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")
	next, called := okHandler()

	w := httptest.NewRecorder()
	u.AuthMiddleware(next).ServeHTTP(w, httptest.NewRequest("GET", "/patients", nil))

	if *called {
		t.Error("handler ran without a session")
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestAuthMiddleware_PassesSessionToContext(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")

	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	var got *model.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	})

	r := httptest.NewRequest("GET", "/patients", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	u.AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), r)

	if got == nil || got.ID != sess.ID {
		t.Fatalf("context session = %+v, want %s", got, sess.ID)
	}
}

func TestAdminMiddleware_SendsPractitionerHome(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")

	sess, err := u.sessions.CreateSession(t.Context(), testIdentity(), "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	next, called := okHandler()
	r := httptest.NewRequest("GET", "/admin/users", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})

	w := httptest.NewRecorder()
	u.AuthMiddleware(u.AdminMiddleware(next)).ServeHTTP(w, r)

	if *called {
		t.Error("admin handler ran for practitioner")
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	u := newTestUI(t, "http://remote.invalid")

	admin := model.IdentityForEmail("admin@clinic.example", "admin")
	sess, err := u.sessions.CreateSession(t.Context(), admin, "tok", time.Time{}, "en")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	next, called := okHandler()
	r := httptest.NewRequest("GET", "/admin/users", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})

	w := httptest.NewRecorder()
	u.AuthMiddleware(u.AdminMiddleware(next)).ServeHTTP(w, r)

	if !*called {
		t.Fatalf("admin handler did not run, status = %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var fromCtx string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	requestIDMiddleware(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	header := w.Header().Get("X-Request-ID")
	if header == "" || header != fromCtx {
		t.Errorf("X-Request-ID = %q, context = %q; want matching non-empty IDs", header, fromCtx)
	}
}
