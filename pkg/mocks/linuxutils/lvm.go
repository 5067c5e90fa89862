package linuxutils

import (
	"github.com/stretchr/testify/mock"

	"github.com/dell/lvm-provider/pkg/base/capacity"
)

// MockWrapLVM is a mock implementation of WrapLVM interface from lvm package
type MockWrapLVM struct {
	mock.Mock
}

// LVCreate is a mock implementations
func (m *MockWrapLVM) LVCreate(name, size, vgName string) error {
	args := m.Mock.Called(name, size, vgName)

	return args.Error(0)
}

// LVRemove is a mock implementations
func (m *MockWrapLVM) LVRemove(fullLVName string) error {
	args := m.Mock.Called(fullLVName)

	return args.Error(0)
}

// LVExtend is a mock implementations
func (m *MockWrapLVM) LVExtend(fullLVName, size string) error {
	args := m.Mock.Called(fullLVName, size)

	return args.Error(0)
}

// GetLVsInVG is a mock implementations
func (m *MockWrapLVM) GetLVsInVG(vgName string) ([]string, error) {
	args := m.Mock.Called(vgName)

	return args.Get(0).([]string), args.Error(1)
}

// GetLVSize is a mock implementations
func (m *MockWrapLVM) GetLVSize(fullLVName string, unit capacity.Unit) (capacity.Value, error) {
	args := m.Mock.Called(fullLVName, unit)

	return args.Get(0).(capacity.Value), args.Error(1)
}

// GetVGExtentSize is a mock implementations
func (m *MockWrapLVM) GetVGExtentSize(fullLVName string) (int64, error) {
	args := m.Mock.Called(fullLVName)

	return args.Get(0).(int64), args.Error(1)
}
