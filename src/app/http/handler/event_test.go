package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/ports"
	"recruitadmin/src/core/usecase"
)

type stubRefs struct{}

func (stubRefs) FindEventMaster(_ context.Context, id int64) (*ports.Ref, error) {
	if id == 1 {
		return &ports.Ref{ID: 1, Name: "First Interview"}, nil
	}
	return nil, nil
}

func (stubRefs) FindLocation(_ context.Context, id int64) (*ports.Ref, error) {
	if id == 2 {
		return &ports.Ref{ID: 2, Name: "Tokyo HQ"}, nil
	}
	return nil, nil
}

type stubEventRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{nextID: 1, rows: make(map[int64]*domain.Event)}
}

func (s *stubEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *event
	saved.ID = s.nextID
	s.nextID++
	s.rows[saved.ID] = &saved
	return &saved, nil
}

func (s *stubEventRepo) Update(_ context.Context, event *domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[event.ID]; !ok {
		return nil, domain.NewNotFoundError("event")
	}
	saved := *event
	s.rows[saved.ID] = &saved
	return &saved, nil
}

func (s *stubEventRepo) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (s *stubEventRepo) FindByIDs(_ context.Context, ids []int64) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if row, ok := s.rows[id]; ok {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubEventRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return domain.NewNotFoundError("event")
	}
	delete(s.rows, id)
	return nil
}

func newEventRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := usecase.NewEventService(newStubEventRepo(), stubRefs{}, testLogger())
	h := NewEventHandler(svc)

	router := gin.New()
	v1 := router.Group("/v1")
	v1.POST("/events/bulk", h.BulkCreate)
	return router
}

func eventItemJSON(masterID int64) string {
	return fmt.Sprintf(
		`{"event_master_id":%d,"location_id":2,"starts_at":"2027-04-01T10:00:00Z","ends_at":"2027-04-01T12:00:00Z","capacity":10,"interviewer_ids":[5]}`,
		masterID,
	)
}

func TestEventBulkCreatePartialSuccess(t *testing.T) {
	router := newEventRouter(t)

	body := fmt.Sprintf(`{"events":[%s,%s,%s]}`,
		eventItemJSON(1), eventItemJSON(99), eventItemJSON(1))
	rec := doJSON(router, http.MethodPost, "/v1/events/bulk", body, "admin")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			Requested int `json:"requested"`
			Created   int `json:"created"`
			Events    []struct {
				ID              int64  `json:"event_id"`
				EventMasterName string `json:"event_master_name"`
			} `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Requested)
	assert.Equal(t, 2, resp.Data.Created)
	require.Len(t, resp.Data.Events, 2)
	assert.Equal(t, "First Interview", resp.Data.Events[0].EventMasterName)
}

func TestEventBulkCreateAllFail(t *testing.T) {
	router := newEventRouter(t)

	body := fmt.Sprintf(`{"events":[%s]}`, eventItemJSON(99))
	rec := doJSON(router, http.MethodPost, "/v1/events/bulk", body, "admin")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			Created int `json:"created"`
			Events  []json.RawMessage
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Data.Created)
	assert.Empty(t, resp.Data.Events)
}

func TestEventBulkCreateRequiresActor(t *testing.T) {
	router := newEventRouter(t)

	body := fmt.Sprintf(`{"events":[%s]}`, eventItemJSON(1))
	rec := doJSON(router, http.MethodPost, "/v1/events/bulk", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
