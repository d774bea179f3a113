package handler

import (
	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/dto"
	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

// RecruitYearHandler handles recruit year endpoints.
type RecruitYearHandler struct {
	recruitYearService *usecase.RecruitYearService
}

func NewRecruitYearHandler(recruitYearService *usecase.RecruitYearService) *RecruitYearHandler {
	return &RecruitYearHandler{recruitYearService: recruitYearService}
}

// Upsert creates or updates a recruit year by its natural key.
// PUT /v1/recruit-years
func (h *RecruitYearHandler) Upsert(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpsertRecruitYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	year, err := h.recruitYearService.Upsert(c.Request.Context(), usecase.RecruitYearInput{
		Year:        req.Year,
		DisplayName: req.DisplayName,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, recruitYearBody(year))
}

// Create creates a new recruit year.
// POST /v1/recruit-years
func (h *RecruitYearHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpsertRecruitYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	year, err := h.recruitYearService.Create(c.Request.Context(), usecase.RecruitYearInput{
		Year:        req.Year,
		DisplayName: req.DisplayName,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, recruitYearBody(year))
}

// Update replaces the display name of a recruit year.
// PUT /v1/recruit-years/:recruit_year_id
func (h *RecruitYearHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "recruit_year_id")
	if !ok {
		return
	}
	var req dto.UpdateRecruitYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	year, err := h.recruitYearService.Update(c.Request.Context(), id, req.DisplayName, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, recruitYearBody(year))
}

// Get returns a recruit year by id.
// GET /v1/recruit-years/:recruit_year_id
func (h *RecruitYearHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "recruit_year_id")
	if !ok {
		return
	}
	year, err := h.recruitYearService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, recruitYearBody(year))
}

// Delete removes a recruit year.
// DELETE /v1/recruit-years/:recruit_year_id
func (h *RecruitYearHandler) Delete(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "recruit_year_id")
	if !ok {
		return
	}
	if err := h.recruitYearService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func recruitYearBody(year *domain.RecruitYear) gin.H {
	return gin.H{
		"recruit_year": gin.H{
			"recruit_year_id": year.ID,
			"year":            year.Year,
			"display_name":    year.DisplayName,
			"created_at":      year.CreatedAt,
			"updated_at":      year.UpdatedAt,
			"updated_by":      year.UpdatedBy,
		},
	}
}
