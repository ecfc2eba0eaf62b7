package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeAlreadyUsed))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeQuotaExceeded))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeInvalidPeriod))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodeAllocationFailed))
	})

	t.Run("falls back to 500 for unknown codes", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NO_SUCH_CODE"))
	})
}

func TestNormalizeErrorCode(t *testing.T) {
	t.Run("translates domain codes", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
		assert.Equal(t, ErrCodeQuotaExceeded, NormalizeErrorCode("QUOTA_EXCEEDED"))
		assert.Equal(t, ErrCodeReservationInUse, NormalizeErrorCode("RESERVATION_IN_USE"))
	})

	t.Run("passes transport codes through", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, NormalizeErrorCode(ErrCodeInternal))
	})

	t.Run("every mapped code has an HTTP status", func(t *testing.T) {
		for domainCode, transportCode := range DomainErrorCodeMapping {
			_, ok := ErrorCodeHTTPStatus[transportCode]
			assert.True(t, ok, "missing status for %s -> %s", domainCode, transportCode)
		}
	})
}

func TestListRequestToFilter(t *testing.T) {
	t.Run("applies defaults for zero values", func(t *testing.T) {
		filter := ListRequest{}.ToFilter()

		assert.Equal(t, 1, filter.Page)
		assert.Equal(t, 20, filter.PageSize)
		assert.Equal(t, "desc", filter.OrderDir)
	})

	t.Run("carries explicit values", func(t *testing.T) {
		filter := ListRequest{Page: 3, PageSize: 50, OrderBy: "name", OrderDir: "asc", Search: "acme"}.ToFilter()

		assert.Equal(t, 3, filter.Page)
		assert.Equal(t, 50, filter.PageSize)
		assert.Equal(t, "name", filter.OrderBy)
		assert.Equal(t, "asc", filter.OrderDir)
		assert.Equal(t, "acme", filter.Search)
	})
}
