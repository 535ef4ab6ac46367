package controller

import (
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Sessions *service.QuizSessionService
	Career   *service.CareerQuizService
}

func NewQuizController(sessions *service.QuizSessionService, career *service.CareerQuizService) *QuizController {
	return &QuizController{Sessions: sessions, Career: career}
}

type startSessionRequest struct {
	SessionType string `json:"sessionType" binding:"required"`
}

// Start godoc
// @Summary Start a quiz session
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body startSessionRequest true "session type, e.g. career"
// @Success 201 {object} util.Response{data=service.StartSessionResult}
// @Router /api/quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	var req startSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Sessions.Start(ctx.Request.Context(), util.SessionUserID(ctx), req.SessionType)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

type advanceRequest struct {
	QuestionIndex int     `json:"questionIndex"`
	Answer        *string `json:"answer"`
}

// Advance godoc
// @Summary Record an answer and move to the next question
// @Description With an answer, records it at questionIndex and returns the
// next question or the final results. Without an answer, returns the
// question at questionIndex (resume). Advancing a completed session
// returns its stored results unchanged.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body advanceRequest true "answer payload"
// @Success 200 {object} util.Response{data=service.AdvanceResult}
// @Failure 404 {object} util.Response
// @Router /api/quiz/{id}/advance [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	var req advanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Sessions.Advance(ctx.Request.Context(), ctx.Param("id"), req.Answer, req.QuestionIndex)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Get godoc
// @Summary Fetch a session's status and results
// @Tags quiz
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	session, err := c.Sessions.Get(ctx.Param("id"), util.SessionUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Advice godoc
// @Summary AI career advice for a completed session
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=service.CareerAdviceResult}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/{id}/advice [get]
func (c *QuizController) Advice(ctx *gin.Context) {
	session, err := c.Sessions.Get(ctx.Param("id"), util.SessionUserID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.Career.SessionAdvice(ctx.Request.Context(), session)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
