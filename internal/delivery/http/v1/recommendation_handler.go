package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
)

type RecommendationHandler struct {
	recUC      domain.RecommendationUsecase
	jobMatchUC domain.JobMatchUsecase
}

func NewRecommendationHandler(rg *gin.RouterGroup, recUC domain.RecommendationUsecase, jobMatchUC domain.JobMatchUsecase) {
	handler := &RecommendationHandler{recUC: recUC, jobMatchUC: jobMatchUC}

	resumes := rg.Group("/resumes")
	{
		resumes.POST("/:id/recommendations",
			middleware.RateLimitMiddleware(middleware.RecommendationRateLimitConfig()),
			handler.Recommend)
		resumes.GET("/:id/jobs", handler.MatchJobs)
	}
}

// Recommend godoc
// @Summary      Generate career recommendations for a resume
// @Description  Sends the structured resume to the LLM advisor and returns suggested career tracks
// @Tags         recommendations
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /resumes/{id}/recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.recUC.RecommendForResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations generated", rec)
}

// MatchJobs godoc
// @Summary      Find job postings matching a resume
// @Description  Builds a search query from the resume's title, skills and location
// @Tags         recommendations
// @Produce      json
// @Param        id     path      string  true   "Resume ID"
// @Param        limit  query     int     false  "Max postings to return"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id}/jobs [get]
func (h *RecommendationHandler) MatchJobs(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	postings, err := h.jobMatchUC.MatchesForResume(c.Request.Context(), id, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job matches retrieved", postings)
}
