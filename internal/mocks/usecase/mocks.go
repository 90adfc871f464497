// Package usecase holds testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"vault/internal/domain/entity"
	"vault/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPasswordUsecase is a mock of usecase.PasswordUsecase.
type MockPasswordUsecase struct {
	mock.Mock
}

// NewMockPasswordUsecase creates a mock that asserts its expectations on cleanup.
func NewMockPasswordUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordUsecase {
	m := &MockPasswordUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordUsecase) Analyze(ctx context.Context, password string, enhanced bool) (*entity.Analysis, error) {
	args := m.Called(ctx, password, enhanced)

	var a *entity.Analysis
	if v := args.Get(0); v != nil {
		a = v.(*entity.Analysis)
	}

	return a, args.Error(1)
}

func (m *MockPasswordUsecase) Generate(ctx context.Context, input *usecase.GenerateInput) (*entity.GeneratedPassword, error) {
	args := m.Called(ctx, input)

	var g *entity.GeneratedPassword
	if v := args.Get(0); v != nil {
		g = v.(*entity.GeneratedPassword)
	}

	return g, args.Error(1)
}

func (m *MockPasswordUsecase) Settings(ctx context.Context, enhanced bool) *usecase.GeneratorSettings {
	args := m.Called(ctx, enhanced)

	var s *usecase.GeneratorSettings
	if v := args.Get(0); v != nil {
		s = v.(*usecase.GeneratorSettings)
	}

	return s
}

func (m *MockPasswordUsecase) GenerateQR(ctx context.Context, password string) ([]byte, error) {
	args := m.Called(ctx, password)

	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}

	return png, args.Error(1)
}

func (m *MockPasswordUsecase) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordUsecase) Verify(ctx context.Context, password, hash string) bool {
	args := m.Called(ctx, password, hash)

	return args.Bool(0)
}
