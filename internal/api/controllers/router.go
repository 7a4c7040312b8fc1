package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumo/internal/models/response_models"
)

// RegisterRoutes wires the full HTTP surface onto the engine.
func RegisterRoutes(r *gin.Engine, quizController *QuizController, userController *UserController) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, response_models.HealthResponse{
			Message: "Lumo Travel Recommendation API",
			Version: "1.0.0",
			Status:  "healthy",
		})
	})

	quizGroup := r.Group("/api/quiz")
	quizGroup.GET("/questions", quizController.GetAllQuestions)
	quizGroup.GET("/step/:stepNumber", quizController.GetStepByNumber)
	quizGroup.POST("/start", quizController.StartQuiz)
	quizGroup.POST("/response", quizController.SubmitResponse)

	userGroup := r.Group("/api/user")
	userGroup.GET("/:id/current-step", userController.GetCurrentStep)
	userGroup.GET("/:id/preferences", userController.GetPreferences)
	userGroup.GET("/:id/recommendations", userController.GetRecommendations)
	userGroup.POST("/:id/itinerary", userController.CreateItinerary)
	userGroup.GET("/:id/status", userController.GetStatus)
}
