package handler

import (
	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/dto"
	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

// EducationalBackgroundHandler handles educational background endpoints.
type EducationalBackgroundHandler struct {
	backgroundService *usecase.EducationalBackgroundService
}

func NewEducationalBackgroundHandler(backgroundService *usecase.EducationalBackgroundService) *EducationalBackgroundHandler {
	return &EducationalBackgroundHandler{backgroundService: backgroundService}
}

// Create creates a new educational background entry.
// POST /v1/educational-backgrounds
func (h *EducationalBackgroundHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateEducationalBackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	background, err := h.backgroundService.Create(c.Request.Context(), domain.EducationalBackgroundParams{
		StudentID:       req.StudentID,
		EducationType:   req.EducationType,
		UniversityID:    req.UniversityID,
		FacultyID:       req.FacultyID,
		GraduationYear:  req.GraduationYear,
		GraduationMonth: req.GraduationMonth,
		DeviationScore:  req.DeviationScore,
		Actor:           actor,
	})
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, backgroundBody(background))
}

// Update replaces the profile fields of an educational background entry.
// PUT /v1/educational-backgrounds/:background_id
func (h *EducationalBackgroundHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "background_id")
	if !ok {
		return
	}
	var req dto.UpdateEducationalBackgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	background, err := h.backgroundService.Update(c.Request.Context(), id, domain.EducationalBackgroundChange{
		EducationType:   req.EducationType,
		UniversityID:    req.UniversityID,
		FacultyID:       req.FacultyID,
		GraduationYear:  req.GraduationYear,
		GraduationMonth: req.GraduationMonth,
		DeviationScore:  req.DeviationScore,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, backgroundBody(background))
}

// Get returns an educational background entry by id.
// GET /v1/educational-backgrounds/:background_id
func (h *EducationalBackgroundHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "background_id")
	if !ok {
		return
	}
	background, err := h.backgroundService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, backgroundBody(background))
}

// Delete removes an educational background entry.
// DELETE /v1/educational-backgrounds/:background_id
func (h *EducationalBackgroundHandler) Delete(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "background_id")
	if !ok {
		return
	}
	if err := h.backgroundService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func backgroundBody(background *domain.EducationalBackground) gin.H {
	body := gin.H{
		"educational_background_id": background.ID,
		"student_id":                background.StudentID,
		"education_type":            background.EducationType,
		"graduation_year":           background.GraduationYear,
		"created_at":                background.CreatedAt,
		"updated_at":                background.UpdatedAt,
		"updated_by":                background.UpdatedBy,
	}
	if background.UniversityID != nil {
		body["university_id"] = *background.UniversityID
	}
	if background.FacultyID != nil {
		body["faculty_id"] = *background.FacultyID
	}
	if background.GraduationMonth != nil {
		body["graduation_month"] = background.GraduationMonth.Value()
	}
	if background.DeviationScore != nil {
		body["deviation_score"] = background.DeviationScore.Value()
	}
	return gin.H{"educational_background": body}
}
