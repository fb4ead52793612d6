package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/devconnector/internal/application/usecase/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type UserHandler struct {
	registerUseCase *auth.RegisterUseCase
	logger          logger.Logger
}

func NewUserHandler(registerUC *auth.RegisterUseCase, log logger.Logger) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUC,
		logger:          log,
	}
}

// Register handles POST /api/user.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.Token})
}
