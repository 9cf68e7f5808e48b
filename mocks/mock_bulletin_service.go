package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adamamaa/worship/internal/domain"
	"github.com/adamamaa/worship/internal/service"
)

// MockBulletinService is a mock implementation of service.BulletinService.
type MockBulletinService struct {
	mock.Mock
}

func (m *MockBulletinService) Analyze(ctx context.Context, input service.AnalyzeBulletinInput) (*domain.BulletinRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulletinRecord), args.Error(1)
}

func (m *MockBulletinService) Current(sessionID string) (*domain.BulletinRecord, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulletinRecord), args.Error(1)
}

func (m *MockBulletinService) UpdateCurrent(sessionID string, rec domain.BulletinRecord) (*domain.BulletinRecord, error) {
	args := m.Called(sessionID, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulletinRecord), args.Error(1)
}

func (m *MockBulletinService) SetSessionTemplate(sessionID string, data []byte) {
	m.Called(sessionID, data)
}

func (m *MockBulletinService) Fill(sessionID string) (*service.FillOutput, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FillOutput), args.Error(1)
}
