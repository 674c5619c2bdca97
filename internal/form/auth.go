package form

import (
	"github.com/Lucas-2000/obreron-admin/internal/service/obreron"
	"github.com/Lucas-2000/obreron-admin/internal/validate"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("username", f.Username,
		validate.MinLen(5, "Username"), validate.MaxLen(255, "Username"))
	errs.Field("password", f.Password,
		validate.MinLen(8, "Senha"), validate.MaxLen(255, "Senha"))
	return errs
}

type RegisterForm struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

func (f RegisterForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("email", f.Email,
		validate.Email(), validate.MaxLen(255, "Email"))
	errs.Field("username", f.Username,
		validate.MinLen(5, "Username"), validate.MaxLen(255, "Username"))
	errs.Field("password", f.Password,
		validate.MinLen(8, "Senha"), validate.MaxLen(255, "Senha"))
	errs.Field("rePassword", f.RePassword,
		validate.MinLen(8, "Redigitação"), validate.MaxLen(255, "Redigitação"))
	if errs.Ok() && f.Password != f.RePassword {
		errs["rePassword"] = "As senhas não coincidem"
	}
	return errs
}

func (f RegisterForm) Request() obreron.RegisterRequest {
	return obreron.RegisterRequest{
		Email:      f.Email,
		Username:   f.Username,
		Password:   f.Password,
		RePassword: f.RePassword,
	}
}

// ResetPasswordRequestForm asks for a reset link by email.
type ResetPasswordRequestForm struct {
	Email string `json:"email"`
}

func (f ResetPasswordRequestForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("email", f.Email,
		validate.Email(), validate.MaxLen(255, "Email"))
	return errs
}

// PasswordForm sets a new password, both in the logged-in profile flow and
// in the token-based reset flow.
type PasswordForm struct {
	Password   string `json:"password"`
	RePassword string `json:"rePassword"`
}

func (f PasswordForm) Validate() validate.Errors {
	errs := validate.Errors{}
	errs.Field("password", f.Password,
		validate.MinLen(8, "Senha"), validate.MaxLen(255, "Senha"))
	errs.Field("rePassword", f.RePassword,
		validate.MinLen(8, "Redigitação"), validate.MaxLen(255, "Redigitação"))
	if errs.Ok() && f.Password != f.RePassword {
		errs["rePassword"] = "As senhas não coincidem"
	}
	return errs
}

func (f PasswordForm) Request() obreron.UpdateUserRequest {
	return obreron.UpdateUserRequest{
		Password:   f.Password,
		RePassword: f.RePassword,
	}
}
