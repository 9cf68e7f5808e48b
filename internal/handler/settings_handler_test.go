package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamamaa/worship/internal/handler"
	"github.com/adamamaa/worship/internal/service"
	"github.com/adamamaa/worship/mocks"
)

func newSettingsHandler() (*handler.SettingsHandler, *mocks.MockSettingsService) {
	mockSvc := new(mocks.MockSettingsService)
	h := handler.NewSettingsHandler(mockSvc)
	return h, mockSvc
}

func TestSettingsHandler_Status(t *testing.T) {
	h, mockSvc := newSettingsHandler()
	mockSvc.On("Status").
		Return(&service.SettingsStatus{CredentialSet: true, TemplateSaved: false}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/settings", nil)

	h.Status(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, _ := json.Marshal(resp.Data)
	var status service.SettingsStatus
	require.NoError(t, json.Unmarshal(data, &status))
	assert.True(t, status.CredentialSet)
	assert.False(t, status.TemplateSaved)
}

func TestSettingsHandler_SaveCredential_Success(t *testing.T) {
	h, mockSvc := newSettingsHandler()
	mockSvc.On("SaveCredential", "AIza-test-key").Return(nil)
	mockSvc.On("Status").
		Return(&service.SettingsStatus{CredentialSet: true}, nil)

	body, _ := json.Marshal(map[string]string{"credential": "AIza-test-key"})
	c, w := newTestContext(t, http.MethodPut, "/api/v1/settings/credential", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SaveCredential(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"credential_set":true`)
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_SaveCredential_InvalidBody(t *testing.T) {
	h, mockSvc := newSettingsHandler()

	c, w := newTestContext(t, http.MethodPut, "/api/v1/settings/credential", bytes.NewReader([]byte("{")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SaveCredential(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	mockSvc.AssertNotCalled(t, "SaveCredential")
}

func TestSettingsHandler_SaveCredential_StoreFailure(t *testing.T) {
	h, mockSvc := newSettingsHandler()
	mockSvc.On("SaveCredential", "key").Return(assert.AnError)

	body, _ := json.Marshal(map[string]string{"credential": "key"})
	c, w := newTestContext(t, http.MethodPut, "/api/v1/settings/credential", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.SaveCredential(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
