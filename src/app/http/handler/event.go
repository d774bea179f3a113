package handler

import (
	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/dto"
	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

// EventHandler handles event endpoints, including the bulk create.
type EventHandler struct {
	eventService *usecase.EventService
}

func NewEventHandler(eventService *usecase.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// BulkCreate creates up to N events independently and returns the ones that
// succeeded.
// POST /v1/events/bulk
func (h *EventHandler) BulkCreate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.BulkCreateEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	inputs := make([]usecase.EventCreateInput, 0, len(req.Events))
	for _, item := range req.Events {
		inputs = append(inputs, usecase.EventCreateInput{
			EventMasterID:  item.EventMasterID,
			LocationID:     item.LocationID,
			StartsAt:       item.StartsAt,
			EndsAt:         item.EndsAt,
			Capacity:       item.Capacity,
			InterviewerIDs: item.InterviewerIDs,
		})
	}

	created, err := h.eventService.BulkCreate(c.Request.Context(), inputs, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	events := make([]gin.H, 0, len(created))
	for _, event := range created {
		events = append(events, eventBody(event))
	}
	response.Created(c, gin.H{
		"requested": len(req.Events),
		"created":   len(events),
		"events":    events,
	})
}

// Create creates a single event.
// POST /v1/events
func (h *EventHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.EventItem
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), usecase.EventCreateInput{
		EventMasterID:  req.EventMasterID,
		LocationID:     req.LocationID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Capacity:       req.Capacity,
		InterviewerIDs: req.InterviewerIDs,
	}, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, gin.H{"event": eventBody(event)})
}

// Reschedule replaces the time window of an event.
// PUT /v1/events/:event_id/schedule
func (h *EventHandler) Reschedule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "event_id")
	if !ok {
		return
	}
	var req dto.RescheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	event, err := h.eventService.Reschedule(c.Request.Context(), id, req.StartsAt, req.EndsAt, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"event": eventBody(event)})
}

// AssignInterviewers replaces the interviewer set of an event.
// PUT /v1/events/:event_id/interviewers
func (h *EventHandler) AssignInterviewers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "event_id")
	if !ok {
		return
	}
	var req dto.AssignInterviewersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	event, err := h.eventService.AssignInterviewers(c.Request.Context(), id, req.InterviewerIDs, actor)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"event": eventBody(event)})
}

// Get returns an event by id.
// GET /v1/events/:event_id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "event_id")
	if !ok {
		return
	}
	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"event": eventBody(event)})
}

// Delete removes an event.
// DELETE /v1/events/:event_id
func (h *EventHandler) Delete(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "event_id")
	if !ok {
		return
	}
	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func eventBody(event *domain.Event) gin.H {
	return gin.H{
		"event_id":          event.ID,
		"event_master_id":   event.EventMasterID,
		"event_master_name": event.EventMasterName,
		"location_id":       event.LocationID,
		"location_name":     event.LocationName,
		"starts_at":         event.StartsAt,
		"ends_at":           event.EndsAt,
		"capacity":          event.Capacity,
		"interviewer_ids":   event.InterviewerIDs,
		"created_at":        event.CreatedAt,
		"updated_at":        event.UpdatedAt,
		"updated_by":        event.UpdatedBy,
	}
}
