package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/internal/logging"
	"github.com/me/clinidash/internal/session"
)

var (
	flagAPIURL    string
	flagTimeout   time.Duration
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger   *slog.Logger
	client   *api.Client
	sessions *session.Store
)

// defaultAPIURL returns the remote service URL, checking CLINIDASH_API_URL first.
func defaultAPIURL() string {
	if s := os.Getenv("CLINIDASH_API_URL"); s != "" {
		return s
	}
	return api.DefaultBaseURL
}

// NewRootCmd creates the root cobra command for the clinidash CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clinidash",
		Short: "clinidash — disability assessment records from the terminal",
		Long:  "clinidash manages patient records, barrier-profile predictions, and user accounts against the remote assessment service.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = api.New(api.Config{BaseURL: flagAPIURL, Timeout: flagTimeout}, logger)

			dir, err := session.DefaultDir()
			if err != nil {
				return fmt.Errorf("locate session directory: %w", err)
			}
			sessions = session.New(client, session.NewFileStorage(dir), nil, logger)
			sessions.Restore()
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", defaultAPIURL(), "Remote service URL (or CLINIDASH_API_URL env)")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Per-request timeout")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newPatientsCmd(),
		newUsersCmd(),
	)

	return root
}

// requireSession fails fast when no session is active, before any request
// leaves the machine.
func requireSession() error {
	if !sessions.Authenticated() {
		return fmt.Errorf("not logged in; run 'clinidash login' first")
	}
	return nil
}
