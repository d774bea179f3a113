package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitadmin/src/core/domain"
)

func runFromDomainError(t *testing.T, err error) (int, ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	FromDomainError(c, err, "req-123")

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Error
}

func TestFromDomainErrorNotFound(t *testing.T) {
	code, detail := runFromDomainError(t, domain.NewNotFoundError("recruit year"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", detail.Code)
	assert.Equal(t, "req-123", detail.RequestID)
}

func TestFromDomainErrorValidation(t *testing.T) {
	code, detail := runFromDomainError(t, domain.NewValidationError("year", "must be between 2000 and 2100"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", detail.Code)
	assert.Equal(t, "year", detail.Field)
	assert.Equal(t, "must be between 2000 and 2100", detail.Message)
}

func TestFromDomainErrorBadRequest(t *testing.T) {
	code, detail := runFromDomainError(t, domain.NewBadRequestError("recruit year already exists"))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "BAD_REQUEST", detail.Code)
}

func TestFromDomainErrorUnclassified(t *testing.T) {
	code, detail := runFromDomainError(t, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", detail.Code)
	// Internal details never leak to the client.
	assert.NotContains(t, detail.Message, "connection reset")
}
