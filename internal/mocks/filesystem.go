package mocks

import (
	"github.com/google/uuid"
	"github.com/n3xus/n3xus"
	"github.com/stretchr/testify/mock"
)

// MockFileSystem implements n3xus.FileSystemOperator for testing across packages
type MockFileSystem struct {
	mock.Mock
}

var _ n3xus.FileSystemOperator = (*MockFileSystem)(nil)

func (m *MockFileSystem) CurrentPath() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockFileSystem) ChangeDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) CreateDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) CreateFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) RemoveNode(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) CopyNode(src, dst string) error {
	args := m.Called(src, dst)
	return args.Error(0)
}

func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	args := m.Called(path)

	// Handle nil returns
	if args.Get(0) == nil {
		return []string{}, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileSystem) Resolve(path string) (n3xus.NodeInfo, error) {
	args := m.Called(path)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(n3xus.NodeInfo), args.Error(1)
}

// MockNodeInfo implements n3xus.NodeInfo for testing
type MockNodeInfo struct {
	mock.Mock
}

var _ n3xus.NodeInfo = (*MockNodeInfo)(nil)

func (m *MockNodeInfo) ID() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

func (m *MockNodeInfo) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNodeInfo) Kind() n3xus.NodeKind {
	args := m.Called()
	return args.Get(0).(n3xus.NodeKind)
}

func (m *MockNodeInfo) IsDir() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockNodeInfo) Path() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNodeInfo) Child(name string) (n3xus.NodeInfo, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(n3xus.NodeInfo), args.Bool(1)
}

func (m *MockNodeInfo) ChildCount() int {
	args := m.Called()
	return args.Int(0)
}
