package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domainCode string
		wireCode   string
		status     int
	}{
		{"NOT_FOUND", ErrCodeNotFound, http.StatusNotFound},
		{"INVOICE_NOT_FOUND", ErrCodeNotFound, http.StatusNotFound},
		{"REASON_CODE_NOT_FOUND", ErrCodeNotFound, http.StatusNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists, http.StatusConflict},
		{"INTEGRITY_VIOLATION", ErrCodeIntegrity, http.StatusConflict},
		{"INVALID_CREDENTIALS", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"RESPONSE_SUM_MISMATCH", ErrCodeValidation, http.StatusBadRequest},
		{"ORPHAN_ATTACHMENT", ErrCodeValidation, http.StatusBadRequest},
		{"INVALID_RESPONSE_AMOUNTS", ErrCodeValidation, http.StatusBadRequest},
		{"INVALID_STATUS", ErrCodeValidation, http.StatusBadRequest},
		{"FORBIDDEN", ErrCodeForbidden, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.domainCode, func(t *testing.T) {
			code := NormalizeErrorCode(tt.domainCode)
			assert.Equal(t, tt.wireCode, code)
			assert.Equal(t, tt.status, GetHTTPStatus(code))
		})
	}
}

func TestGetHTTPStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}
