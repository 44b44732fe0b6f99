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

type CommentHandler struct {
	commentService services.CommentService
	helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, helper: h}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(derr)})
		return
	}

	comment, derr := h.commentService.AddComment(middleware.CurrentPrincipal(c), req)
	if derr != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.CommentResponse{
		Envelope: models.OK(http.StatusCreated, "Comment has been created"),
		Comment:  comment,
	})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(models.Validation("Invalid comment ID"))})
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(derr)})
		return
	}

	comment, derr := h.commentService.UpdateComment(middleware.CurrentPrincipal(c), id, req)
	if derr != nil {
		h.helper.Send(c, models.CommentResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.CommentResponse{
		Envelope: models.OK(http.StatusOK, "Comment has been updated"),
		Comment:  comment,
	})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid comment ID")))
		return
	}

	if derr := h.commentService.DeleteComment(middleware.CurrentPrincipal(c), id); derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}

	h.helper.Send(c, models.OK(http.StatusOK, "Comment has been deleted"))
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := uuid.Parse(c.Param("articleId"))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid article ID")))
		return
	}

	comments, derr := h.commentService.GetComments(articleID)
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	c.JSON(http.StatusOK, comments)
}
