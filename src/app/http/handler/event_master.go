package handler

import (
	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/dto"
	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

// EventMasterHandler handles event master endpoints.
type EventMasterHandler struct {
	eventMasterService *usecase.EventMasterService
}

func NewEventMasterHandler(eventMasterService *usecase.EventMasterService) *EventMasterHandler {
	return &EventMasterHandler{eventMasterService: eventMasterService}
}

// Create creates a new event master.
// POST /v1/event-masters
func (h *EventMasterHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateEventMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	master, err := h.eventMasterService.Create(c.Request.Context(), usecase.EventMasterInput{
		RecruitYearID: req.RecruitYearID,
		Name:          req.Name,
		Description:   req.Description,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, eventMasterBody(master))
}

// Update replaces name and description of an event master.
// PUT /v1/event-masters/:event_master_id
func (h *EventMasterHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "event_master_id")
	if !ok {
		return
	}
	var req dto.UpdateEventMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	master, err := h.eventMasterService.Update(c.Request.Context(), id, domain.EventMasterChange{
		Name:        req.Name,
		Description: req.Description,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, eventMasterBody(master))
}

// Get returns an event master by id.
// GET /v1/event-masters/:event_master_id
func (h *EventMasterHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "event_master_id")
	if !ok {
		return
	}
	master, err := h.eventMasterService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, eventMasterBody(master))
}

// Delete removes an event master.
// DELETE /v1/event-masters/:event_master_id
func (h *EventMasterHandler) Delete(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "event_master_id")
	if !ok {
		return
	}
	if err := h.eventMasterService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func eventMasterBody(master *domain.EventMaster) gin.H {
	return gin.H{
		"event_master": gin.H{
			"event_master_id": master.ID,
			"recruit_year_id": master.RecruitYearID,
			"name":            master.Name,
			"description":     master.Description,
			"created_at":      master.CreatedAt,
			"updated_at":      master.UpdatedAt,
			"updated_by":      master.UpdatedBy,
		},
	}
}
