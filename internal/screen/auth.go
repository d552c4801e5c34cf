package screen

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"campus-services-client/internal/api"
	"campus-services-client/internal/model"
)

// Account email rule: the domain must be one of the college domains, exactly.
var validEmailDomains = []string{"muj.manipal.edu", "jaipur.manipal.edu"}

func validCollegeEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, d := range validEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}

type Auth struct {
	api *api.Client
	log *zap.Logger
}

func NewAuth(c *api.Client, log *zap.Logger) *Auth {
	return &Auth{api: c, log: log}
}

func (a *Auth) Login(ctx context.Context, email, password string) (model.User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return model.User{}, &ValidationError{Field: "email", Message: "Please fill in all fields"}
	}
	return a.api.Login(ctx, strings.TrimSpace(email), password)
}

type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            model.Role // student or faculty; defaults to student
}

func (f SignupForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Password) == "" || strings.TrimSpace(f.ConfirmPassword) == "" {
		return &ValidationError{Field: "form", Message: "Please fill in all fields"}
	}
	if !validCollegeEmail(f.Email) {
		return &ValidationError{Field: "email", Message: "Email must be a college email (@muj.manipal.edu or @jaipur.manipal.edu)"}
	}
	if len(f.Password) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	if f.Role != "" && f.Role != model.RoleStudent && f.Role != model.RoleFaculty {
		return &ValidationError{Field: "role", Message: "Role must be student or faculty"}
	}
	return nil
}

// Signup registers an account. An invalid form never reaches the network.
func (a *Auth) Signup(ctx context.Context, f SignupForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	role := f.Role
	if role == "" {
		role = model.RoleStudent
	}
	return a.api.Register(ctx, api.RegisterRequest{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.ToLower(strings.TrimSpace(f.Email)),
		Password: f.Password,
		Role:     role,
	})
}

// ForgotPassword requests a reset email. The returned token is only set in
// development setups where the backend could not send the email and falls
// back to handing the token over directly.
func (a *Auth) ForgotPassword(ctx context.Context, email string) (resetToken, message string, err error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", &ValidationError{Field: "email", Message: "Please enter your email address"}
	}
	if !validCollegeEmail(email) {
		return "", "", &ValidationError{Field: "email", Message: "Please enter a valid college email address"}
	}
	data, msg, err := a.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", "", err
	}
	return data.ResetToken, msg, nil
}

func (a *Auth) ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) error {
	if strings.TrimSpace(resetToken) == "" {
		return &ValidationError{Field: "resetToken", Message: "Please enter the reset token"}
	}
	if strings.TrimSpace(password) == "" {
		return &ValidationError{Field: "password", Message: "Please enter a new password"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if password != confirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	return a.api.ResetPassword(ctx, strings.TrimSpace(resetToken), strings.TrimSpace(password))
}
