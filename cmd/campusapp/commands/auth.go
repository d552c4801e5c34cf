package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"campus-services-client/internal/model"
	"campus-services-client/internal/screen"
)

func loginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login EMAIL [PASSWORD]",
		Short: "Log in and store the session token",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 2 {
				password = args[1]
			} else {
				fmt.Fprint(app.Out, "Password: ")
				password = app.readLine()
			}
			user, err := screen.NewAuth(app.API, app.Log).Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Logged in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
	return cmd
}

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.API.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Logged out")
			return nil
		},
	}
}

func signupCmd(app *App) *cobra.Command {
	var form screen.SignupForm
	var role string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account (college email required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.Role = model.Role(role)
			if err := screen.NewAuth(app.API, app.Log).Signup(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Account created, you can log in now")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "college email")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "confirm password")
	cmd.Flags().StringVar(&role, "role", "student", "student or faculty")
	return cmd
}

func whoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := app.API.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
			return nil
		},
	}
}

func forgotPasswordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password EMAIL",
		Short: "Request a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, msg, err := screen.NewAuth(app.API, app.Log).ForgotPassword(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "Password reset email has been sent. Please check your inbox and spam folder."
			}
			fmt.Fprintln(app.Out, msg)
			if token != "" {
				// development fallback: the backend could not send the email
				fmt.Fprintf(app.Out, "Reset token: %s\n", token)
			}
			return nil
		},
	}
}

func resetPasswordCmd(app *App) *cobra.Command {
	var password, confirm string
	cmd := &cobra.Command{
		Use:   "reset-password TOKEN",
		Short: "Reset the password with a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := screen.NewAuth(app.API, app.Log).ResetPassword(cmd.Context(), args[0], password, confirm); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Password reset")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "confirm new password")
	return cmd
}
