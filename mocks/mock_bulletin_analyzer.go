package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adamamaa/worship/internal/port"
)

// MockBulletinAnalyzer is a mock implementation of port.BulletinAnalyzer.
type MockBulletinAnalyzer struct {
	mock.Mock
}

func (m *MockBulletinAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*port.AnalyzeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.AnalyzeOutput), args.Error(1)
}
