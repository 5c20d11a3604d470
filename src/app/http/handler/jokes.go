package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/auth"
	"jokeshare/src/app/http/dto"
	"jokeshare/src/app/http/response"
	"jokeshare/src/app/middleware"
	"jokeshare/src/core/usecase"
)

const (
	msgNoJokes       = "There are no jokes to display."
	msgNotAllowed    = "What you're trying to do is not allowed."
	newJokeTemplate  = "joke_new.html"
	deleteMethodName = "delete"
)

// JokesHandler serves the joke pages and actions.
type JokesHandler struct {
	jokeService *usecase.JokeService
	sessions    *auth.Sessions
	log         *slog.Logger
}

// NewJokesHandler creates a new JokesHandler.
func NewJokesHandler(jokeService *usecase.JokeService, sessions *auth.Sessions, log *slog.Logger) *JokesHandler {
	return &JokesHandler{
		jokeService: jokeService,
		sessions:    sessions,
		log:         log,
	}
}

// jokeBoundary holds the messages shown for a failure on /jokes/:jokeId.
func jokeBoundary(jokeID string) response.Boundary {
	return response.Boundary{
		BadRequest:   msgNotAllowed,
		Unauthorized: fmt.Sprintf("Sorry, but %s is not your joke.", jokeID),
		NotFound:     fmt.Sprintf("Sorry, but the joke by the id of %s doesn't exist.", jokeID),
	}
}

// Random shows a random joke.
// GET /jokes
func (h *JokesHandler) Random(c *gin.Context) {
	joke, err := h.jokeService.Random(c.Request.Context())
	if err != nil {
		h.render(c, response.Boundary{NotFound: msgNoJokes}, err)
		return
	}
	response.Page(c, http.StatusOK, "jokes_random.html", view(c, "Jokes", gin.H{"Joke": joke}))
}

// Show shows one joke, with a delete button for its owner.
// GET /jokes/:jokeId
func (h *JokesHandler) Show(c *gin.Context) {
	jokeID := c.Param("jokeId")

	joke, err := h.jokeService.Get(c.Request.Context(), jokeID)
	if err != nil {
		h.render(c, jokeBoundary(jokeID), err)
		return
	}

	userID, _ := h.sessions.GetUserID(c.Request)
	response.Page(c, http.StatusOK, "joke.html", view(c, joke.Name, gin.H{
		"Joke":    joke,
		"IsOwner": joke.OwnedBy(userID),
	}))
}

// New renders the new-joke form.
// GET /jokes/new
func (h *JokesHandler) New(c *gin.Context) {
	response.Page(c, http.StatusOK, newJokeTemplate, view(c, "New joke", nil))
}

// Create posts a joke for the signed-in user.
// POST /jokes/new
func (h *JokesHandler) Create(c *gin.Context) {
	var userID string
	switch d := h.sessions.RequireUserID(c.Request, "").(type) {
	case auth.RedirectRequired:
		h.sessions.Follow(c, d)
		return
	case auth.Authorized:
		userID = d.UserID
	}

	if err := c.Request.ParseForm(); err != nil {
		h.badRequest(c, dto.FormFailure(dto.MsgFormNotSubmitted))
		return
	}
	form, failure := dto.ParseJokeForm(c.Request.PostForm)
	if failure != nil {
		h.badRequest(c, failure)
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), userID, form.Name, form.Content)
	if err != nil {
		h.render(c, response.Boundary{}, err)
		return
	}
	c.Redirect(http.StatusFound, "/jokes/"+joke.ID)
}

// Delete removes a joke owned by the signed-in user. The form must carry
// _method=delete.
// POST /jokes/:jokeId
func (h *JokesHandler) Delete(c *gin.Context) {
	jokeID := c.Param("jokeId")
	boundary := jokeBoundary(jokeID)

	if c.PostForm("_method") != deleteMethodName {
		response.ErrorPage(c, http.StatusBadRequest, boundary.BadRequest, middleware.GetRequestID(c))
		return
	}

	var userID string
	switch d := h.sessions.RequireUserID(c.Request, "").(type) {
	case auth.RedirectRequired:
		h.sessions.Follow(c, d)
		return
	case auth.Authorized:
		userID = d.UserID
	}

	if err := h.jokeService.Delete(c.Request.Context(), jokeID, userID); err != nil {
		h.render(c, boundary, err)
		return
	}
	c.Redirect(http.StatusFound, "/jokes")
}

func (h *JokesHandler) badRequest(c *gin.Context, failure *dto.ActionData) {
	response.Page(c, http.StatusBadRequest, newJokeTemplate, withAction(view(c, "New joke", nil), failure))
}

func (h *JokesHandler) render(c *gin.Context, b response.Boundary, err error) {
	b.Render(c, middleware.GetLogger(c, h.log), err, middleware.GetRequestID(c))
}
