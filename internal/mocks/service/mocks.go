// Package service holds testify mocks for the domain service interfaces.
package service

import (
	"vault/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPasswordGenerator is a mock of service.PasswordGenerator.
type MockPasswordGenerator struct {
	mock.Mock
}

// NewMockPasswordGenerator creates a mock that asserts its expectations on cleanup.
func NewMockPasswordGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordGenerator {
	m := &MockPasswordGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordGenerator) Generate(opts entity.GeneratorOptions, enhanced bool) (string, error) {
	args := m.Called(opts, enhanced)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordGenerator) PoolSize(opts entity.GeneratorOptions, enhanced bool) int {
	args := m.Called(opts, enhanced)

	return args.Int(0)
}

// MockQRCodeService is a mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations on cleanup.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) Encode(content string) ([]byte, error) {
	args := m.Called(content)

	var png []byte
	if v := args.Get(0); v != nil {
		png = v.([]byte)
	}

	return png, args.Error(1)
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *MockPasswordHasher) Cost() int {
	args := m.Called()

	return args.Int(0)
}
