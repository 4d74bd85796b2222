package v1

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-resume-registry/internal/delivery/http/response"
	"go-resume-registry/internal/domain"
	"go-resume-registry/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC    domain.CandidateUsecase
	maxUploadBytes int64
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, maxUploadBytes int64) {
	handler := &CandidateHandler{candidateUC: candidateUC, maxUploadBytes: maxUploadBytes}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetByID)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// listQuery binds the optional, composable listing filters.
type listQuery struct {
	Skill          *string  `form:"skill"`
	MinExperience  *float64 `form:"Min_Experience" binding:"omitempty,gte=0"`
	GraduationYear *int     `form:"Graduation_Year" binding:"omitempty,gte=1950,lte=2100"`
}

// Create godoc
// @Summary      Register a candidate
// @Description  Create a candidate record with an attached resume (PDF/DOC/DOCX)
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        Full_Name            formData  string  true  "Full name"
// @Param        DOB                  formData  string  true  "Date of birth (YYYY-MM-DD)"
// @Param        Contact_Number       formData  string  true  "Contact number"
// @Param        Address              formData  string  true  "Address"
// @Param        Qualification        formData  string  true  "Qualification"
// @Param        Graduation_Year      formData  int     true  "Graduation year"
// @Param        Years_of_Experience  formData  number  true  "Years of experience"
// @Param        Skills               formData  string  true  "Comma-separated skills, e.g. Python, FastAPI"
// @Param        Resume               formData  file    true  "Resume file"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      415  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("Resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file is required"))
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.Error(apperror.Validation("Resume", fmt.Sprintf("file exceeds the %d MB upload limit", h.maxUploadBytes/(1<<20))))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Storage("Failed to open uploaded resume", err))
		return
	}
	defer src.Close()

	resume, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Storage("Failed to read uploaded resume", err))
		return
	}

	input := domain.CreateCandidateInput{
		FullName:          c.PostForm("Full_Name"),
		DOB:               c.PostForm("DOB"),
		ContactNumber:     c.PostForm("Contact_Number"),
		Address:           c.PostForm("Address"),
		Qualification:     c.PostForm("Qualification"),
		GraduationYear:    c.PostForm("Graduation_Year"),
		YearsOfExperience: c.PostForm("Years_of_Experience"),
		Skills:            c.PostForm("Skills"),
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), input, resume, fileHeader.Filename)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  List candidates, optionally filtered by skill, minimum experience and graduation year
// @Tags         candidates
// @Produce      json
// @Param        skill            query  string  false  "Skill (exact, case-insensitive)"
// @Param        Min_Experience   query  number  false  "Minimum years of experience"
// @Param        Graduation_Year  query  int     false  "Exact graduation year"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      422  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(apperror.Validation("query", "invalid filter parameters"))
		return
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), domain.CandidateFilter{
		Skill:          q.Skill,
		MinExperience:  q.MinExperience,
		GraduationYear: q.GraduationYear,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// GetByID godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate id"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, ok := h.candidateID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Description  Remove a candidate record and its stored resume file
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := h.candidateID(c)
	if !ok {
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil)
}

func (h *CandidateHandler) candidateID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		// A malformed id can never name an existing record.
		c.Error(apperror.NotFound("Candidate not found"))
		return 0, false
	}
	return id, true
}
