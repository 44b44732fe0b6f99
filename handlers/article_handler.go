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

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.CreateArticleResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}
	if derr := h.helper.CheckStruct(req); derr != nil {
		h.helper.Send(c, models.CreateArticleResponse{Envelope: models.Fail(derr)})
		return
	}

	article, derr := h.articleService.CreateArticle(middleware.CurrentPrincipal(c), req)
	if derr != nil {
		h.helper.Send(c, models.CreateArticleResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.CreateArticleResponse{
		Envelope: models.OK(http.StatusCreated, "Article has been created"),
		Article:  article,
	})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.helper.Send(c, models.UpdateArticleResponse{Envelope: models.Fail(models.Validation("Invalid article ID"))})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.Send(c, models.UpdateArticleResponse{Envelope: models.Fail(models.Validation("Invalid request body"))})
		return
	}

	article, derr := h.articleService.UpdateArticle(middleware.CurrentPrincipal(c), id, req)
	if derr != nil {
		h.helper.Send(c, models.UpdateArticleResponse{Envelope: models.Fail(derr)})
		return
	}

	h.helper.Send(c, models.UpdateArticleResponse{
		Envelope: models.OK(http.StatusOK, "Article has been updated"),
		Article:  article,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid article ID")))
		return
	}

	if derr := h.articleService.DeleteArticle(middleware.CurrentPrincipal(c), id); derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}

	h.helper.Send(c, models.OK(http.StatusOK, "Article has been deleted"))
}

func (h *ArticleHandler) FindArticles(c *gin.Context) {
	articles, derr := h.articleService.FindArticles()
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) FindArticleByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.helper.Send(c, models.Fail(models.Validation("Invalid article ID")))
		return
	}

	article, derr := h.articleService.FindArticleByID(id)
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) FindArticleByMostDisliked(c *gin.Context) {
	articles, derr := h.articleService.FindArticlesByMostDisliked()
	if derr != nil {
		h.helper.Send(c, models.Fail(derr))
		return
	}
	c.JSON(http.StatusOK, articles)
}
