package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lumo/internal/models/request_models"
	"lumo/internal/services"
	"lumo/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (qc *QuizController) GetAllQuestions(c *gin.Context) {
	catalog, err := qc.quizService.GetCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Fetched quiz questions successfully")
}

func (qc *QuizController) GetStepByNumber(c *gin.Context) {
	stepNumber, err := strconv.Atoi(c.Param("stepNumber"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid step number")
		return
	}

	step, err := qc.quizService.GetStep(c.Request.Context(), stepNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, step, "Fetched quiz step successfully")
}

func (qc *QuizController) StartQuiz(c *gin.Context) {
	session, err := qc.quizService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Quiz session started")
}

func (qc *QuizController) SubmitResponse(c *gin.Context) {
	var req request_models.QuizResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.StepNumber == nil || req.SelectedOption == nil {
		utils.RespondError(c, http.StatusBadRequest, "userId, stepNumber, and selectedOption are required")
		return
	}

	result, err := qc.quizService.RecordResponse(c.Request.Context(), req.UserID, *req.StepNumber, *req.SelectedOption)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Response saved"
	if result.IsComplete {
		message = "Quiz completed! User preferences generated."
	}
	utils.RespondSuccess(c, result, message)
}
