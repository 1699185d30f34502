package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

// SessionHandler exposes the operator session.
type SessionHandler struct {
	session ports.SessionService
}

func NewSessionHandler(session ports.SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User *domain.User `json:"user"`
}

type sessionResponse struct {
	Loading  bool         `json:"loading"`
	LoggedIn bool         `json:"loggedIn"`
	User     *domain.User `json:"user,omitempty"`
}

// Login authenticates the operator against the catalog API.
//
// @Summary      Log in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Operator credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /panel/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{User: user})
}

// Logout forgets the session. It always succeeds.
//
// @Summary      Log out
// @Tags         session
// @Success      204
// @Router       /panel/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Get reports the current session state.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /panel/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	sess := h.session.Snapshot()
	return c.JSON(http.StatusOK, sessionResponse{
		Loading:  sess.Loading,
		LoggedIn: sess.LoggedIn(),
		User:     sess.User,
	})
}
