package ui

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/internal/i18n"
	"github.com/me/clinidash/internal/metrics"
	"github.com/me/clinidash/internal/store"
	"github.com/me/clinidash/pkg/model"
)

// UI handles the web user interface. Every data-bearing page builds a
// per-request client against the remote resource service using the
// session's bearer token; the dashboard itself stores nothing but
// sessions.
type UI struct {
	store     store.Store
	sessions  *SessionManager
	apiConfig api.Config
	logger    *slog.Logger
	metrics   *metrics.Collector // optional
	limiter   *loginLimiter
	startTime time.Time
	secure    bool // Use secure cookies (HTTPS)
	defaultLang i18n.Lang
}

// Config holds UI configuration.
type Config struct {
	Secure          bool   // Use secure cookies for HTTPS
	DefaultLanguage string // UI language for visitors without a choice
	LoginRatePerMin int    // Login attempts allowed per client IP per minute
}

// New creates a new UI handler.
func New(st store.Store, apiCfg api.Config, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		store:       st,
		sessions:    NewSessionManager(st),
		apiConfig:   apiCfg,
		logger:      logger.With("component", "ui"),
		limiter:     newLoginLimiter(cfg.LoginRatePerMin),
		startTime:   time.Now(),
		secure:      cfg.Secure,
		defaultLang: i18n.ParseLang(cfg.DefaultLanguage),
	}
}

// WithMetrics attaches the Prometheus collector to the UI and its
// per-request remote clients.
func (u *UI) WithMetrics(c *metrics.Collector) {
	u.metrics = c
}

// Close stops background goroutines.
func (u *UI) Close() {
	u.limiter.Stop()
}

// --- Auth Handlers ---

// HandleLogin renders the login page.
func (u *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// If already logged in, redirect to dashboard.
	if sess, _ := u.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	lang := u.lang(r, nil)
	data := map[string]any{
		"Title": "Login - CliniDash",
		"Error": r.URL.Query().Get("error"),
		"Lang":  string(lang),
	}
	u.render(w, lang, "login", data)
}

// HandleLoginPost processes the login form.
func (u *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if !u.limiter.Allow(clientIP(r)) {
		http.Redirect(w, r, "/login?error=Too+many+attempts,+try+again+later", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	// Authenticate against the remote service.
	client := u.clientFor(r, nil)
	tok, err := client.Login(r.Context(), email, password)
	if err != nil {
		if u.metrics != nil {
			u.metrics.RecordLogin(false)
		}
		u.logger.Warn("login failed", "email", email, "error", err)
		http.Redirect(w, r, "/login?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
		return
	}

	// Decode the token for the role claim and expiry; the token is a UI
	// hint only, the remote service re-checks authorization per call.
	claims, err := api.DecodeToken(tok.AccessToken)
	if err != nil {
		u.logger.Error("unreadable token from login", "error", err)
		http.Redirect(w, r, "/login?error=Login+failed", http.StatusSeeOther)
		return
	}
	identity := model.IdentityForEmail(claims.Subject, claims.Role)

	lang := u.lang(r, nil)
	sess, err := u.sessions.CreateSession(r.Context(), identity, tok.AccessToken, claims.ExpiresAt, string(lang))
	if err != nil {
		u.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/login?error=Session+creation+failed", http.StatusSeeOther)
		return
	}

	SetSessionCookie(w, sess, u.secure)
	if u.metrics != nil {
		u.metrics.RecordLogin(true)
		u.metrics.RecordSessionCreated()
	}

	u.logger.Info("user logged in", "email", identity.Email, "role", identity.Role, "session", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to login. Logging out
// twice is harmless.
func (u *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := u.sessions.GetSessionFromRequest(r); sess != nil {
		_ = u.sessions.DeleteSession(r.Context(), sess.ID)
		u.logger.Info("user logged out", "email", sess.Email, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// --- Dashboard ---

// HandleDashboard renders the main dashboard.
func (u *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	patients, err := client.ListPatients(r.Context(), model.ListOptions{Limit: 500})
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	stats := ComputeAnalytics(patients)

	recent := patients
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	data := map[string]any{
		"Title":   "Dashboard - CliniDash",
		"Session": sess,
		"Stats":   stats,
		"Recent":  recent,
		"Uptime":  time.Since(u.startTime).Round(time.Second).String(),
	}
	u.render(w, lang, "dashboard", data)
}

// --- Patient Handlers ---

// HandlePatientList renders the patient list page.
func (u *UI) HandlePatientList(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)
	opts := parseListOptions(r)

	patients, err := client.ListPatients(r.Context(), opts)
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	// Name search is applied locally over the fetched page.
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		filtered := patients[:0]
		for _, p := range patients {
			if strings.Contains(strings.ToLower(p.FullName), strings.ToLower(query)) {
				filtered = append(filtered, p)
			}
		}
		patients = filtered
	}

	data := map[string]any{
		"Title":    "Patients - CliniDash",
		"Session":  sess,
		"Patients": patients,
		"Query":    query,
		"Message":  r.URL.Query().Get("msg"),
		"Skip":     opts.Skip,
		"Limit":    opts.Limit,
		"PrevSkip": max(0, opts.Skip-opts.Limit),
		"NextSkip": opts.Skip + opts.Limit,
		"HasMore":  len(patients) == opts.Limit,
	}
	u.render(w, lang, "patients/list", data)
}

// HandlePatientNew renders the patient creation form.
func (u *UI) HandlePatientNew(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)

	data := map[string]any{
		"Title":   "Add Patient - CliniDash",
		"Session": sess,
		"Patient": model.PatientInput{},
		"Action":  "/patients",
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, lang, "patients/form", data)
}

// HandlePatientCreate processes the patient creation form.
func (u *UI) HandlePatientCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	in, err := parsePatientForm(r)
	if err != nil {
		http.Redirect(w, r, "/patients/new?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	created, err := client.CreatePatient(r.Context(), in)
	if err != nil {
		if api.IsValidation(err) {
			http.Redirect(w, r, "/patients/new?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
			return
		}
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("patient created", "id", created.ID)
	http.Redirect(w, r, "/patients?msg=patientCreated", http.StatusSeeOther)
}

// HandlePatientDetail renders a single patient.
func (u *UI) HandlePatientDetail(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "Patient not found")
		return
	}

	patient, err := client.GetPatient(r.Context(), id)
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	data := map[string]any{
		"Title":   patient.FullName + " - CliniDash",
		"Session": sess,
		"Patient": patient,
		"Message": r.URL.Query().Get("msg"),
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, lang, "patients/detail", data)
}

// HandlePatientEdit renders the patient edit form.
func (u *UI) HandlePatientEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "Patient not found")
		return
	}

	patient, err := client.GetPatient(r.Context(), id)
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	data := map[string]any{
		"Title":   "Edit Patient - CliniDash",
		"Session": sess,
		"Patient": patient.Input(),
		"Action":  fmt.Sprintf("/patients/%d", patient.ID),
		"Editing": true,
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, lang, "patients/form", data)
}

// HandlePatientUpdate processes the patient edit form. The derived global
// level is recomputed from the submitted sub-scores before the update is
// sent.
func (u *UI) HandlePatientUpdate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "Patient not found")
		return
	}

	in, err := parsePatientForm(r)
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/patients/%d/edit?error=%s", id, url.QueryEscape(err.Error())), http.StatusSeeOther)
		return
	}

	if _, err := client.UpdatePatient(r.Context(), id, in); err != nil {
		if api.IsValidation(err) {
			http.Redirect(w, r, fmt.Sprintf("/patients/%d/edit?error=%s", id, url.QueryEscape(api.UserMessage(err))), http.StatusSeeOther)
			return
		}
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("patient updated", "id", id)
	http.Redirect(w, r, fmt.Sprintf("/patients/%d?msg=patientUpdated", id), http.StatusSeeOther)
}

// HandlePatientDelete deletes a patient.
func (u *UI) HandlePatientDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "Patient not found")
		return
	}

	if err := client.DeletePatient(r.Context(), id); err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("patient deleted", "id", id)
	http.Redirect(w, r, "/patients?msg=patientDeleted", http.StatusSeeOther)
}

// HandlePatientPredict triggers the remote prediction for a patient and
// returns to the detail page, which shows the stored result.
func (u *UI) HandlePatientPredict(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "Patient not found")
		return
	}

	result, err := client.PredictPatient(r.Context(), id)
	if err != nil {
		if api.IsValidation(err) || api.IsNotFound(err) {
			http.Redirect(w, r, fmt.Sprintf("/patients/%d?error=%s", id, url.QueryEscape(api.UserMessage(err))), http.StatusSeeOther)
			return
		}
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("prediction completed", "patient_id", id, "profile", result.Profile)
	http.Redirect(w, r, fmt.Sprintf("/patients/%d", id), http.StatusSeeOther)
}

// --- Predictions ---

// HandlePredictions renders the predictions overview: patients with a
// stored prediction result plus a picker to run new ones.
func (u *UI) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	patients, err := client.ListPatients(r.Context(), model.ListOptions{Limit: 500})
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	var predicted, pending []model.Patient
	for _, p := range patients {
		if p.HasPrediction() {
			predicted = append(predicted, p)
		} else {
			pending = append(pending, p)
		}
	}

	data := map[string]any{
		"Title":     "Predictions - CliniDash",
		"Session":   sess,
		"Predicted": predicted,
		"Pending":   pending,
	}
	u.render(w, lang, "predictions", data)
}

// --- Analytics ---

// HandleAnalytics renders aggregate charts computed from the fetched
// patient list.
func (u *UI) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	patients, err := client.ListPatients(r.Context(), model.ListOptions{Limit: 500})
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	stats := ComputeAnalytics(patients)

	// Stable ordering for chart rows.
	genders := make([]string, 0, len(stats.GenderCounts))
	for g := range stats.GenderCounts {
		genders = append(genders, g)
	}
	sort.Strings(genders)

	profiles := make([]int, 0, len(stats.ProfileCounts))
	for p := range stats.ProfileCounts {
		profiles = append(profiles, p)
	}
	sort.Ints(profiles)

	data := map[string]any{
		"Title":    "Analytics - CliniDash",
		"Session":  sess,
		"Stats":    stats,
		"Genders":  genders,
		"Profiles": profiles,
	}
	u.render(w, lang, "analytics", data)
}

// --- Admin Handlers ---

// HandleAdminUsers renders the user management page.
func (u *UI) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	users, err := client.ListUsers(r.Context(), parseListOptions(r))
	if err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	data := map[string]any{
		"Title":   "User List - CliniDash",
		"Session": sess,
		"Users":   users,
		"Message": r.URL.Query().Get("msg"),
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, lang, "admin/users", data)
}

// HandleAdminUserRegister processes the user registration form.
func (u *UI) HandleAdminUserRegister(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/users?error=Invalid+request", http.StatusSeeOther)
		return
	}

	in := api.RegisterUserInput{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Role:     model.ParseRole(r.FormValue("role")).WireValue(),
	}
	if in.Email == "" || in.Password == "" {
		http.Redirect(w, r, "/admin/users?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	created, err := client.RegisterUser(r.Context(), in)
	if err != nil {
		if api.IsValidation(err) {
			http.Redirect(w, r, "/admin/users?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
			return
		}
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("user registered", "id", created.ID, "email", created.Email)
	http.Redirect(w, r, "/admin/users?msg=success", http.StatusSeeOther)
}

// HandleAdminUserStatus toggles a user's active flag.
func (u *UI) HandleAdminUserStatus(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)
	client := u.clientFor(r, sess)

	id, err := pathID(r)
	if err != nil {
		u.renderNotFound(w, lang, "User not found")
		return
	}
	active := r.FormValue("active") == "true"

	if _, err := client.UpdateUserStatus(r.Context(), id, active); err != nil {
		u.handleAPIError(w, r, lang, err)
		return
	}

	u.logger.Info("user status updated", "id", id, "active", active)
	http.Redirect(w, r, "/admin/users?msg=success", http.StatusSeeOther)
}

// --- Settings ---

// HandleSettings renders the settings page.
func (u *UI) HandleSettings(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	lang := u.lang(r, sess)

	data := map[string]any{
		"Title":   "Settings - CliniDash",
		"Session": sess,
		"Lang":    string(lang),
	}
	u.render(w, lang, "settings", data)
}

// HandleSettingsLanguage switches the UI language. The choice is stored
// on the session and mirrored in a cookie for the login page.
func (u *UI) HandleSettingsLanguage(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	choice := r.FormValue("language")
	if !i18n.Supported(choice) {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	if sess != nil {
		if err := u.sessions.SetLanguage(r.Context(), sess.ID, choice); err != nil {
			u.logger.Error("set session language", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    choice,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

// --- Helper Methods ---

// clientFor builds a remote client for this request. The 401 observer
// deletes the backing session row, so a rejected token can never serve a
// second page view even when the handler mishandles the error.
func (u *UI) clientFor(r *http.Request, sess *model.Session) *api.Client {
	client := api.New(u.apiConfig, u.logger)
	if u.metrics != nil {
		client.SetMetrics(u.metrics)
	}
	if sess != nil {
		client.SetToken(sess.Token)
		ctx := r.Context()
		client.OnUnauthorized = func() {
			if err := u.sessions.DeleteSession(ctx, sess.ID); err != nil {
				u.logger.Error("teardown after 401", "session", sess.ID, "error", err)
			} else {
				u.logger.Warn("session torn down after 401", "session", sess.ID, "email", sess.Email)
			}
		}
	}
	return client
}

// handleAPIError is the shared translation from remote-client errors to
// page behavior: authentication failures end the session and land on the
// login page, authorization failures bounce to the dashboard.
func (u *UI) handleAPIError(w http.ResponseWriter, r *http.Request, lang i18n.Lang, err error) {
	switch {
	case api.IsAuthentication(err):
		ClearSessionCookie(w)
		http.Redirect(w, r, "/login?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
	case api.IsAuthorization(err):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case api.IsNotFound(err):
		u.renderNotFound(w, lang, api.UserMessage(err))
	default:
		u.renderError(w, lang, api.UserMessage(err), err)
	}
}

func (u *UI) lang(r *http.Request, sess *model.Session) i18n.Lang {
	if sess != nil && sess.Lang != "" {
		return i18n.ParseLang(sess.Lang)
	}
	if c, err := r.Cookie(i18n.CookieName); err == nil && i18n.Supported(c.Value) {
		return i18n.ParseLang(c.Value)
	}
	return u.defaultLang
}

func clientIP(r *http.Request) string {
	// RealIP middleware rewrites RemoteAddr when behind a proxy.
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	return host
}

func parseListOptions(r *http.Request) model.ListOptions {
	opts := model.ListOptions{}
	if skip := r.URL.Query().Get("skip"); skip != "" {
		if n, err := strconv.Atoi(skip); err == nil {
			opts.Skip = n
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			opts.Limit = n
		}
	}
	opts.Clamp()
	return opts
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// parsePatientForm builds a PatientInput from the submitted form. The
// derived global level is always recomputed, never read from the form.
func parsePatientForm(r *http.Request) (model.PatientInput, error) {
	var in model.PatientInput
	if err := r.ParseForm(); err != nil {
		return in, fmt.Errorf("invalid form")
	}

	in.FullName = strings.TrimSpace(r.FormValue("nombre_apellidos"))
	if in.FullName == "" {
		return in, fmt.Errorf("full name is required")
	}
	in.BirthDate = strings.TrimSpace(r.FormValue("fecha_nacimiento"))
	in.Gender = r.FormValue("genero")
	in.SexualOrientation = r.FormValue("orientacion_sexual")
	in.DeficiencyCause = r.FormValue("causa_deficiencia")
	in.PhysicalCategory = r.FormValue("cat_fisica")
	in.PsychosocialCategory = r.FormValue("cat_psicosocial")

	var err error
	if in.Age, err = formInt(r, "edad"); err != nil {
		return in, err
	}
	levels := []*int{&in.LevelD1, &in.LevelD2, &in.LevelD3, &in.LevelD4, &in.LevelD5, &in.LevelD6}
	for i, dst := range levels {
		field := fmt.Sprintf("nivel_d%d", i+1)
		v, err := formInt(r, field)
		if err != nil {
			return in, err
		}
		*dst = v
	}

	in.Recompute()
	return in, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid value for %s", field)
	}
	return n, nil
}

func (u *UI) render(w http.ResponseWriter, lang i18n.Lang, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, lang, template, data); err != nil {
		u.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (u *UI) renderError(w http.ResponseWriter, lang i18n.Lang, message string, err error) {
	u.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - CliniDash",
		"Message": message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = renderTemplate(w, lang, "error", data)
}

func (u *UI) renderNotFound(w http.ResponseWriter, lang i18n.Lang, message string) {
	data := map[string]any{
		"Title":   "Not Found - CliniDash",
		"Message": message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = renderTemplate(w, lang, "error", data)
}
