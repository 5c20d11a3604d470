package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/auth"
	"jokeshare/src/app/http/dto"
	"jokeshare/src/app/http/response"
	"jokeshare/src/app/middleware"
	"jokeshare/src/core/domain"
	"jokeshare/src/core/usecase"
)

const loginTemplate = "login.html"

// LoginHandler handles login, registration and logout.
type LoginHandler struct {
	authService *usecase.AuthService
	sessions    *auth.Sessions
	log         *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(authService *usecase.AuthService, sessions *auth.Sessions, log *slog.Logger) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		sessions:    sessions,
		log:         log,
	}
}

// Show renders the login form.
// GET /login
func (h *LoginHandler) Show(c *gin.Context) {
	response.Page(c, http.StatusOK, loginTemplate, h.page(c, c.Query("redirectTo")))
}

// Submit logs in or registers, depending on loginType.
// POST /login
func (h *LoginHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.badRequest(c, "", dto.FormFailure(dto.MsgFormNotSubmitted))
		return
	}
	redirectTo := c.Request.PostForm.Get("redirectTo")

	form, failure := dto.ParseLoginForm(c.Request.PostForm)
	if failure != nil {
		h.badRequest(c, redirectTo, failure)
		return
	}

	ctx := c.Request.Context()
	var user *domain.UserSummary

	switch form.LoginType {
	case dto.LoginTypeLogin:
		u, err := h.authService.Login(ctx, form.Username, form.Password)
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.badRequest(c, redirectTo, form.Failure(dto.MsgBadCredentials))
			return
		}
		if err != nil {
			h.fail(c, err)
			return
		}
		user = u

	case dto.LoginTypeRegister:
		exists, err := h.authService.UserExists(ctx, form.Username)
		if err != nil {
			h.fail(c, err)
			return
		}
		if exists {
			h.badRequest(c, redirectTo, form.Failure(dto.UserExistsMessage(form.Username)))
			return
		}

		u, err := h.authService.Register(ctx, form.Username, form.Password)
		if domain.IsConflict(err) {
			h.badRequest(c, redirectTo, form.Failure(dto.MsgRegisterFailed))
			return
		}
		if err != nil {
			h.fail(c, err)
			return
		}
		user = u

	default:
		h.badRequest(c, redirectTo, form.Failure(dto.MsgLoginTypeInvalid))
		return
	}

	if err := h.sessions.CreateSession(c, user.ID, form.RedirectTo); err != nil {
		h.fail(c, err)
	}
}

// Logout destroys the session.
// POST /logout
func (h *LoginHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
}

// LogoutPage sends visitors who open /logout directly back home.
// GET /logout
func (h *LoginHandler) LogoutPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

func (h *LoginHandler) page(c *gin.Context, redirectTo string) gin.H {
	return view(c, "Login", gin.H{"RedirectTo": redirectTo})
}

func (h *LoginHandler) badRequest(c *gin.Context, redirectTo string, failure *dto.ActionData) {
	response.Page(c, http.StatusBadRequest, loginTemplate, withAction(h.page(c, redirectTo), failure))
}

func (h *LoginHandler) fail(c *gin.Context, err error) {
	response.Boundary{}.Render(c, middleware.GetLogger(c, h.log), err, middleware.GetRequestID(c))
}
