package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the remote service",
		Long:  "Log in and store the session token for subsequent commands. A failed login leaves any existing session untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if email == "" {
				fmt.Print("Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Print("Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			if err := sessions.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			sess := sessions.Current()
			fmt.Printf("Logged in as %s (%s)\n", sess.Identity.Email, sess.Identity.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			wasActive := sessions.Authenticated()
			sessions.Logout()
			if wasActive {
				fmt.Println("Logged out.")
			} else {
				fmt.Println("Already logged out.")
			}
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessions.Current()
			if sess == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%-8s %s\n", "Email:", sess.Identity.Email)
			fmt.Printf("%-8s %s\n", "Name:", sess.Identity.Name)
			fmt.Printf("%-8s %s\n", "Role:", sess.Identity.Role)
			return nil
		},
	}
}
