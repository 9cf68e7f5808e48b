package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/adamamaa/worship/internal/service"
)

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Status() (*service.SettingsStatus, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SettingsStatus), args.Error(1)
}

func (m *MockSettingsService) SaveCredential(credential string) error {
	args := m.Called(credential)
	return args.Error(0)
}

func (m *MockSettingsService) Credential() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) SaveTemplate(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockSettingsService) LoadTemplate() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
