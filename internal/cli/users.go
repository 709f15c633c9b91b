package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/clinidash/internal/api"
	"github.com/me/clinidash/pkg/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts (admin only)",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersRegisterCmd(),
		newUsersStatusCmd(),
	)
	return cmd
}

func newUsersListCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			opts := model.ListOptions{Skip: skip, Limit: limit}
			opts.Clamp()
			users, err := client.ListUsers(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			fmt.Printf("%-6s  %-30s  %-25s  %-14s  %s\n", "ID", "EMAIL", "NAME", "ROLE", "ACTIVE")
			fmt.Printf("%-6s  %-30s  %-25s  %-14s  %s\n", "--", "-----", "----", "----", "------")
			for _, u := range users {
				fmt.Printf("%-6d  %-30s  %-25s  %-14s  %t\n", u.ID, u.Email, u.FullName, u.Role, u.IsActive)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Records to skip")
	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum records to return")
	return cmd
}

func newUsersRegisterCmd() *cobra.Command {
	var email, password, fullName, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			in := api.RegisterUserInput{
				Email:    email,
				Password: password,
				FullName: fullName,
				Role:     model.ParseRole(role).WireValue(),
			}
			created, err := client.RegisterUser(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("register user: %w", err)
			}
			fmt.Printf("Registered user %d (%s) as %s\n", created.ID, created.Email, created.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&role, "role", "practitioner", "Role (practitioner, admin)")
	return cmd
}

func newUsersStatusCmd() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Activate or deactivate a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}

			updated, err := client.UpdateUserStatus(cmd.Context(), id, active)
			if err != nil {
				return fmt.Errorf("update user status: %w", err)
			}
			fmt.Printf("User %d (%s) active=%t\n", updated.ID, updated.Email, updated.IsActive)
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "Whether the account is active")
	return cmd
}
