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

type DislikeHandler struct {
	dislikeService services.DislikeService
	helper         *helper.HTTPHelper
}

func NewDislikeHandler(dislikeService services.DislikeService, h *helper.HTTPHelper) *DislikeHandler {
	return &DislikeHandler{dislikeService: dislikeService, helper: h}
}

func (h *DislikeHandler) AddArticleDislike(c *gin.Context) {
	var req models.ArticleDislikeRequest
	if !h.bindDislikeRequest(c, &req) {
		return
	}
	h.add(c, models.ArticleTarget(req.ArticleID))
}

func (h *DislikeHandler) AddCommentDislike(c *gin.Context) {
	var req models.CommentDislikeRequest
	if !h.bindDislikeRequest(c, &req) {
		return
	}
	h.add(c, models.CommentTarget(req.CommentID))
}

func (h *DislikeHandler) DeleteArticleDislike(c *gin.Context) {
	var req models.ArticleDislikeRequest
	if !h.bindDeleteRequest(c, &req) {
		return
	}
	h.remove(c, models.ArticleTarget(req.ArticleID))
}

func (h *DislikeHandler) DeleteCommentDislike(c *gin.Context) {
	var req models.CommentDislikeRequest
	if !h.bindDeleteRequest(c, &req) {
		return
	}
	h.remove(c, models.CommentTarget(req.CommentID))
}

func (h *DislikeHandler) GetDislikesByArticleID(c *gin.Context) {
	h.list(c, "articleId", "Invalid article ID", h.dislikeService.DislikesByArticle)
}

func (h *DislikeHandler) GetDislikesByCommentID(c *gin.Context) {
	h.list(c, "commentId", "Invalid comment ID", h.dislikeService.DislikesByComment)
}

func (h *DislikeHandler) GetDislikesByUserID(c *gin.Context) {
	h.list(c, "userId", "Invalid user ID", h.dislikeService.DislikesByUser)
}

func (h *DislikeHandler) add(c *gin.Context, target models.Target) {
	dislike, derr := h.dislikeService.AddDislike(middleware.CurrentPrincipal(c), target)
	if derr != nil {
		h.helper.Send(c, models.DislikeResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.DislikeResponse{
		Envelope: models.OK(http.StatusCreated, "Dislike has been created"),
		Dislike:  dislike,
	})
}

func (h *DislikeHandler) remove(c *gin.Context, target models.Target) {
	if derr := h.dislikeService.RemoveDislike(middleware.CurrentPrincipal(c), target); derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	h.helper.Send(c, models.OK(http.StatusOK, "Dislike has been deleted"))
}

func (h *DislikeHandler) list(c *gin.Context, param, invalidMsg string, query func(uuid.UUID) ([]models.Dislike, *models.DomainError)) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation(invalidMsg)))
		return
	}

	dislikes, derr := query(id)
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	c.JSON(http.StatusOK, dislikes)
}

func (h *DislikeHandler) bindDislikeRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.helper.Send(c, models.DislikeResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return false
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.DislikeResponse{Envelope: models.Fail(derr)})
		return false
	}
	return true
}

func (h *DislikeHandler) bindDeleteRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid request body")))
		return false
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return false
	}
	return true
}
