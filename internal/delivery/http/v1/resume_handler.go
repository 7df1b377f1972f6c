package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-resume-backend/internal/delivery/http/middleware"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/security"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	limiter  *security.UploadLimiter
}

func NewResumeHandler(rg *gin.RouterGroup, resumeUC domain.ResumeUsecase, limiter *security.UploadLimiter) {
	handler := &ResumeHandler{resumeUC: resumeUC, limiter: limiter}

	resumes := rg.Group("/resumes")
	{
		resumes.POST("", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()), handler.Upload)
		resumes.GET("", handler.List)
		resumes.GET("/:id", handler.Get)
		resumes.GET("/:id/markdown", handler.GetMarkdown)
		resumes.PUT("/:id", handler.Replace)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// Upload godoc
// @Summary      Upload and parse a resume
// @Description  Accepts a PDF, DOCX or TXT file, parses it into structured fields and stores the result
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true   "Resume file (pdf, docx or txt, max 10MB)"
// @Param        user_id  formData  string  false  "Owner identifier"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /resumes [post]
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("could not read uploaded file"))
		return
	}

	userID := c.PostForm("user_id")
	if userID == "" {
		userID = "anonymous"
	}

	// Per-user daily quota on top of the per-IP middleware limit.
	if h.limiter != nil {
		allowed, retryAfter, _ := h.limiter.AllowUpload(c.Request.Context(), c.ClientIP(), userID)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.Error(apperror.TooManyRequests("Upload quota exceeded. Please try again later."))
			return
		}
	}

	rec, err := h.resumeUC.Upload(c.Request.Context(), userID, header.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume parsed", rec)
}

// Get godoc
// @Summary      Get a parsed resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.resumeUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", rec)
}

// GetMarkdown godoc
// @Summary      Get a resume's markdown rendering
// @Tags         resumes
// @Produce      plain
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {string}  string
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id}/markdown [get]
func (h *ResumeHandler) GetMarkdown(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	md, err := h.resumeUC.GetMarkdown(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// Replace godoc
// @Summary      Replace a resume's structured fields
// @Description  Stores a user-corrected version of the parse result; corrections are authoritative
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Resume ID"
// @Param        resume  body      domain.ParsedResume  true  "Corrected resume JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [put]
func (h *ResumeHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var parsed domain.ParsedResume
	if err := c.ShouldBindJSON(&parsed); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	rec, err := h.resumeUC.Replace(c.Request.Context(), id, &parsed)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", rec)
}

// List godoc
// @Summary      List a user's resumes
// @Tags         resumes
// @Produce      json
// @Param        user_id    query     string  false  "Owner identifier"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        page_size  query     int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	userID := c.DefaultQuery("user_id", "anonymous")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	recs, total, err := h.resumeUC.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, http.StatusOK, "Resumes retrieved", recs, total, page)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.resumeUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

// parseID reads the :id path parameter as a UUID and reports the error
// through the shared error middleware on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("invalid resume id"))
		return uuid.Nil, false
	}
	return id, true
}
