package controller

import (
	"strconv"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController is the admin CRUD surface for questions and domains.
type CatalogController struct {
	Catalog *service.CatalogService
}

func NewCatalogController(catalog *service.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// ListQuestions godoc
// @Summary List questions (paged)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/admin/questions [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	questions, total, err := c.Catalog.ListQuestions(page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": questions, "total": total})
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionInput true "question"
// @Success 201 {object} util.Response
// @Router /api/admin/questions [post]
func (c *CatalogController) CreateQuestion(ctx *gin.Context) {
	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Catalog.CreateQuestion(in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body service.QuestionInput true "question"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *CatalogController) UpdateQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Catalog.UpdateQuestion(id, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/admin/questions/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.Catalog.DeleteQuestion(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListDomains godoc
// @Summary List enabled career domains
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/domains [get]
func (c *CatalogController) ListDomains(ctx *gin.Context) {
	domains, err := c.Catalog.ListDomains()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, domains)
}

// CreateDomain godoc
// @Summary Create a career domain
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.DomainInput true "domain"
// @Success 201 {object} util.Response
// @Router /api/admin/domains [post]
func (c *CatalogController) CreateDomain(ctx *gin.Context) {
	var in service.DomainInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.Catalog.CreateDomain(in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, d)
}

// UpdateDomain godoc
// @Summary Update a career domain
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "domain id"
// @Param body body service.DomainInput true "domain"
// @Success 200 {object} util.Response
// @Router /api/admin/domains/{id} [put]
func (c *CatalogController) UpdateDomain(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var in service.DomainInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.Catalog.UpdateDomain(id, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// DeleteDomain godoc
// @Summary Delete a career domain
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "domain id"
// @Success 200 {object} util.Response
// @Router /api/admin/domains/{id} [delete]
func (c *CatalogController) DeleteDomain(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.Catalog.DeleteDomain(id); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
