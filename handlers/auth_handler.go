package handlers

import (
	"net/http"

	"socialboard/helper"
	"socialboard/middleware"
	"socialboard/models"
	"socialboard/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService services.AuthService
	helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, helper: h}
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.CreateUserResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.CreateUserResponse{Envelope: models.Fail(derr)})
		return
	}

	user, derr := h.authService.CreateUser(req)
	if derr != nil {
		h.helper.Send(c, models.CreateUserResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.CreateUserResponse{
		Envelope: models.OK(http.StatusCreated, "User has been created"),
		User:     user,
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.SignInResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.SignInResponse{Envelope: models.Fail(derr)})
		return
	}

	token, derr := h.authService.SignIn(req)
	if derr != nil {
		h.helper.Send(c, models.SignInResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.SignInResponse{
		Envelope: models.OK(http.StatusOK, "Signed in"),
		Token:    token,
	})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.helper.Send(c, models.UpdateUserResponse{Envelope: models.Fail(models.Validation("Invalid user ID"))})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.UpdateUserResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}

	user, derr := h.authService.UpdateUser(middleware.CurrentPrincipal(c), id, req)
	if derr != nil {
		h.helper.Send(c, models.UpdateUserResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.UpdateUserResponse{
		Envelope: models.OK(http.StatusOK, "User has been updated"),
		User:     user,
	})
}

func (h *AuthHandler) FindUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid user ID")))
		return
	}

	user, derr := h.authService.FindUserByID(id)
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) GetUserByToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.helper.Send(c, models.UserTokenResponse{Envelope: models.Fail(models.Validation("Token is required"))})
		return
	}

	principal, derr := h.authService.GetUserByToken(token)
	if derr != nil {
		h.helper.Send(c, models.UserTokenResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.UserTokenResponse{
		Envelope: models.OK(http.StatusOK, "Token resolved"),
		User:     principal,
	})
}
