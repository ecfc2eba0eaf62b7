package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/interfaces/http/dto"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandlerHandleDomainError(t *testing.T) {
	h := &BaseHandler{}

	t.Run("maps not found to 404", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleDomainError(c, shared.ErrNotFound)

		resp := decodeResponse(t, w)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("maps quota exhaustion to 409", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleDomainError(c, shared.NewDomainError("QUOTA_EXCEEDED", "Reservation quota exceeded for this period"))

		resp := decodeResponse(t, w)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeQuotaExceeded, resp.Error.Code)
	})

	t.Run("maps consumed reservation to 409", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleDomainError(c, shared.NewDomainError("ALREADY_USED", "Reservation already consumed"))

		resp := decodeResponse(t, w)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrCodeAlreadyUsed, resp.Error.Code)
	})

	t.Run("falls back to 500 for unexpected errors", func(t *testing.T) {
		c, w := newTestContext(t)

		h.HandleDomainError(c, assert.AnError)

		resp := decodeResponse(t, w)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	})

	t.Run("carries the request ID into the error body", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Set("request_id", "req-42")

		h.HandleDomainError(c, shared.ErrNotFound)

		resp := decodeResponse(t, w)
		assert.Equal(t, "req-42", resp.Error.RequestID)
	})
}

func TestGetOperatorID(t *testing.T) {
	t.Run("parses valid header", func(t *testing.T) {
		c, _ := newTestContext(t)
		id := uuid.New()
		c.Request.Header.Set("X-Operator-ID", id.String())

		got := getOperatorID(c)

		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		c, _ := newTestContext(t)

		assert.Nil(t, getOperatorID(c))
	})

	t.Run("returns nil for malformed header", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Request.Header.Set("X-Operator-ID", "not-a-uuid")

		assert.Nil(t, getOperatorID(c))
	})
}
