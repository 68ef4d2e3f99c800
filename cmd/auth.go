package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sporthub-cli/storage"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to SportHub",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				reader := bufio.NewReader(os.Stdin)
				value, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(value)
			}
			if password == "" {
				fmt.Print("Password: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return err
				}
				password = strings.TrimSpace(string(bytes))
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			resp, err := client.Login(context.Background(), email, password)
			if err != nil {
				return err
			}

			creds := storage.Credentials{
				AccessToken: resp.AccessToken,
				UserID:      resp.UserID,
				Rol:         resp.Rol,
				Email:       email,
			}
			if err := storage.SaveCredentials(&creds); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func authStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check auth status",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds == nil || creds.AccessToken == "" {
				fmt.Println("Not logged in.")
				return nil
			}

			if creds.AccessTokenExpired(time.Now()) {
				fmt.Printf("Token expired for %s. Run 'sporthub auth login' to re-authenticate.\n", creds.Email)
				return nil
			}
			fmt.Printf("Logged in as %s (%s).\n", creds.Email, creds.Rol)
			return nil
		},
	}
	return cmd
}

func authLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ClearCredentials(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
	return cmd
}
