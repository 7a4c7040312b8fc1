package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumo/internal/models/request_models"
	"lumo/internal/services"
	"lumo/pkg/utils"
)

type UserController struct {
	quizService           services.QuizServiceInterface
	recommendationService services.RecommendationServiceInterface
	itineraryService      services.ItineraryServiceInterface
}

func NewUserController(
	quizService services.QuizServiceInterface,
	recommendationService services.RecommendationServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *UserController {
	return &UserController{
		quizService:           quizService,
		recommendationService: recommendationService,
		itineraryService:      itineraryService,
	}
}

func (uc *UserController) GetCurrentStep(c *gin.Context) {
	step, err := uc.quizService.GetCurrentStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, step, "Fetched current step successfully")
}

func (uc *UserController) GetStatus(c *gin.Context) {
	status, err := uc.quizService.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Fetched session status successfully")
}

func (uc *UserController) GetPreferences(c *gin.Context) {
	preferences, err := uc.quizService.GetPreferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, preferences, "Fetched user preferences successfully")
}

func (uc *UserController) GetRecommendations(c *gin.Context) {
	recommendations, err := uc.recommendationService.GetRecommendations(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Fetched travel recommendations successfully")
}

func (uc *UserController) CreateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := uc.itineraryService.GetItinerary(c.Request.Context(), c.Param("id"), req.LocationName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
