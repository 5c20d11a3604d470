package dto

import (
	"fmt"
	"net/url"

	"jokeshare/src/core/domain"
)

// Form error messages.
const (
	MsgFormNotSubmitted = "Form not submitted correctly."
	MsgLoginTypeInvalid = "Login type invalid"
	MsgBadCredentials   = "Username/password combination is incorrect"
	MsgRegisterFailed   = "Something went wrong trying to create a new user."
)

// UserExistsMessage is the form error for a taken username.
func UserExistsMessage(username string) string {
	return fmt.Sprintf("User with username %s already exists", username)
}

// Login types accepted by the login form.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

// ActionData is the structured result of a rejected submission. The page is
// re-rendered from it with status 400.
type ActionData struct {
	FormError   string
	FieldErrors map[string]string
	Fields      map[string]string
}

// FormFailure returns ActionData carrying only a form-level error.
func FormFailure(msg string) *ActionData {
	return &ActionData{FormError: msg}
}

// LoginForm is a parsed and validated login or registration submission.
type LoginForm struct {
	LoginType  string
	Username   string
	Password   string
	RedirectTo string
}

// Failure returns ActionData with msg as form error and the submitted values.
func (f LoginForm) Failure(msg string) *ActionData {
	return &ActionData{FormError: msg, Fields: f.fields()}
}

func (f LoginForm) fields() map[string]string {
	return map[string]string{
		"loginType": f.LoginType,
		"username":  f.Username,
		"password":  f.Password,
	}
}

// ParseLoginForm reads the login form. A non-nil ActionData means the
// submission was rejected and must be answered with 400.
//
// redirectTo is optional and always passes through domain.ValidateRedirect.
// loginType is not checked here; see LoginForm.Failure and MsgLoginTypeInvalid.
func ParseLoginForm(form url.Values) (LoginForm, *ActionData) {
	if !hasAll(form, "loginType", "username", "password") {
		return LoginForm{}, FormFailure(MsgFormNotSubmitted)
	}

	f := LoginForm{
		LoginType:  form.Get("loginType"),
		Username:   domain.NormalizeWhitespace(form.Get("username")),
		Password:   domain.NormalizeWhitespace(form.Get("password")),
		RedirectTo: domain.ValidateRedirect(form.Get("redirectTo")),
	}

	fieldErrors := collect(map[string]string{
		"username": domain.ValidateUsername(f.Username),
		"password": domain.ValidatePassword(f.Password),
	})
	if fieldErrors != nil {
		return f, &ActionData{FieldErrors: fieldErrors, Fields: f.fields()}
	}
	return f, nil
}

// JokeForm is a parsed and validated new-joke submission.
type JokeForm struct {
	Name    string
	Content string
}

// ParseJokeForm reads the new-joke form. A non-nil ActionData means the
// submission was rejected and must be answered with 400.
func ParseJokeForm(form url.Values) (JokeForm, *ActionData) {
	if !hasAll(form, "name", "content") {
		return JokeForm{}, FormFailure(MsgFormNotSubmitted)
	}

	f := JokeForm{
		Name:    domain.NormalizeWhitespace(form.Get("name")),
		Content: domain.NormalizeWhitespace(form.Get("content")),
	}

	fieldErrors := collect(map[string]string{
		"name":    domain.ValidateJokeName(f.Name),
		"content": domain.ValidateJokeContent(f.Content),
	})
	if fieldErrors != nil {
		return f, &ActionData{
			FieldErrors: fieldErrors,
			Fields:      map[string]string{"name": f.Name, "content": f.Content},
		}
	}
	return f, nil
}

func hasAll(form url.Values, keys ...string) bool {
	for _, k := range keys {
		if !form.Has(k) {
			return false
		}
	}
	return true
}

// collect drops empty messages and returns nil when nothing is left.
func collect(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for field, msg := range errs {
		if msg != "" {
			out[field] = msg
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
