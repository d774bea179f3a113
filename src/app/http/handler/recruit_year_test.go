package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitadmin/src/core/domain"
	"recruitadmin/src/core/usecase"
)

type stubRecruitYearRepo struct {
	nextID int64
	rows   map[int64]*domain.RecruitYear
}

func newStubRecruitYearRepo() *stubRecruitYearRepo {
	return &stubRecruitYearRepo{nextID: 1, rows: make(map[int64]*domain.RecruitYear)}
}

func (s *stubRecruitYearRepo) Create(_ context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	saved := *year
	saved.ID = s.nextID
	s.nextID++
	s.rows[saved.ID] = &saved
	return &saved, nil
}

func (s *stubRecruitYearRepo) Update(_ context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	saved := *year
	s.rows[saved.ID] = &saved
	return &saved, nil
}

func (s *stubRecruitYearRepo) FindByID(_ context.Context, id int64) (*domain.RecruitYear, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (s *stubRecruitYearRepo) FindByYear(_ context.Context, year int) (*domain.RecruitYear, error) {
	for _, row := range s.rows {
		if row.Year == year {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubRecruitYearRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.rows[id]; !ok {
		return domain.NewNotFoundError("recruit year")
	}
	delete(s.rows, id)
	return nil
}

func newRecruitYearRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := usecase.NewRecruitYearService(newStubRecruitYearRepo(), testLogger())
	h := NewRecruitYearHandler(svc)

	router := gin.New()
	v1 := router.Group("/v1")
	v1.PUT("/recruit-years", h.Upsert)
	v1.POST("/recruit-years", h.Create)
	v1.GET("/recruit-years/:recruit_year_id", h.Get)
	v1.DELETE("/recruit-years/:recruit_year_id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body, actor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(ActorHeader, actor)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecruitYearUpsertRequiresActor(t *testing.T) {
	router := newRecruitYearRouter(t)

	rec := doJSON(router, http.MethodPut, "/v1/recruit-years", `{"year":2027,"display_name":"2027"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-Actor")
}

func TestRecruitYearUpsertCreatesThenUpdates(t *testing.T) {
	router := newRecruitYearRouter(t)

	rec := doJSON(router, http.MethodPut, "/v1/recruit-years", `{"year":2027,"display_name":"First"}`, "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var first struct {
		Data struct {
			RecruitYear struct {
				ID          int64  `json:"recruit_year_id"`
				DisplayName string `json:"display_name"`
			} `json:"recruit_year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, "First", first.Data.RecruitYear.DisplayName)

	rec = doJSON(router, http.MethodPut, "/v1/recruit-years", `{"year":2027,"display_name":"Second"}`, "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var second struct {
		Data struct {
			RecruitYear struct {
				ID          int64  `json:"recruit_year_id"`
				DisplayName string `json:"display_name"`
			} `json:"recruit_year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.Data.RecruitYear.ID, second.Data.RecruitYear.ID)
	assert.Equal(t, "Second", second.Data.RecruitYear.DisplayName)
}

func TestRecruitYearCreateRejectsInvalidYear(t *testing.T) {
	router := newRecruitYearRouter(t)

	rec := doJSON(router, http.MethodPost, "/v1/recruit-years", `{"year":1990,"display_name":"x"}`, "admin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRecruitYearGetUnknown(t *testing.T) {
	router := newRecruitYearRouter(t)

	rec := doJSON(router, http.MethodGet, "/v1/recruit-years/42", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecruitYearInvalidIDParam(t *testing.T) {
	router := newRecruitYearRouter(t)

	rec := doJSON(router, http.MethodGet, "/v1/recruit-years/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
