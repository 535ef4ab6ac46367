package controller

import (
	"strconv"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	Resumes *service.ResumeService
}

func NewResumeController(resumes *service.ResumeService) *ResumeController {
	return &ResumeController{Resumes: resumes}
}

// Upload godoc
// @Summary Upload a resume file
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "resume file"
// @Success 201 {object} util.Response
// @Router /api/resume/upload [post]
func (c *ResumeController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.Resumes.Upload(ctx.Request.Context(), header)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"fileUrl": url})
}

// Analyze godoc
// @Summary Analyze resume text with AI
// @Tags resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AnalyzeResumeRequest true "resume text and target role"
// @Success 200 {object} util.Response
// @Router /api/resume/analyze [post]
func (c *ResumeController) Analyze(ctx *gin.Context) {
	var req service.AnalyzeResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.Resumes.Analyze(ctx.Request.Context(), requesterID(ctx), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// History godoc
// @Summary List the user's past resume analyses
// @Tags resume
// @Produce json
// @Security BearerAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/resume/history [get]
func (c *ResumeController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	analyses, total, err := c.Resumes.History(claims.UserID, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"analyses": analyses, "total": total})
}
