package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/devconnector/internal/application/usecase/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type AuthHandler struct {
	loginUseCase       *auth.LoginUseCase
	currentUserUseCase *auth.CurrentUserUseCase
	logger             logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, currentUC *auth.CurrentUserUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		currentUserUseCase: currentUC,
		logger:             log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.Token})
}

// CurrentUser handles GET /api/auth.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		c.Error(err)
		return
	}

	u, err := h.currentUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(u))
}
