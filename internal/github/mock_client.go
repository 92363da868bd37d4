package github

import (
	"context"
)

// MockClient is a mock implementation of the Client interface for testing
type MockClient struct {
	// ListRepositoriesFunc can be set to mock ListRepositories behavior
	ListRepositoriesFunc func(ctx context.Context, owner string, opts *ListOptions) ([]Repository, error)

	// DeleteRepositoryFunc can be set to mock DeleteRepository behavior
	DeleteRepositoryFunc func(ctx context.Context, owner, name string) error

	// GetAuthenticatedUserFunc can be set to mock GetAuthenticatedUser behavior
	GetAuthenticatedUserFunc func(ctx context.Context) (string, error)

	// Call tracking
	Calls []MockCall
}

// MockCall records a method call for verification
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

// ListRepositories implements Client.ListRepositories
func (m *MockClient) ListRepositories(ctx context.Context, owner string, opts *ListOptions) ([]Repository, error) {
	m.Calls = append(m.Calls, MockCall{Method: "ListRepositories", Args: []interface{}{owner, opts}})
	if m.ListRepositoriesFunc != nil {
		return m.ListRepositoriesFunc(ctx, owner, opts)
	}
	return nil, nil
}

// DeleteRepository implements Client.DeleteRepository
func (m *MockClient) DeleteRepository(ctx context.Context, owner, name string) error {
	m.Calls = append(m.Calls, MockCall{Method: "DeleteRepository", Args: []interface{}{owner, name}})
	if m.DeleteRepositoryFunc != nil {
		return m.DeleteRepositoryFunc(ctx, owner, name)
	}
	return nil
}

// GetAuthenticatedUser implements Client.GetAuthenticatedUser
func (m *MockClient) GetAuthenticatedUser(ctx context.Context) (string, error) {
	m.Calls = append(m.Calls, MockCall{Method: "GetAuthenticatedUser", Args: []interface{}{}})
	if m.GetAuthenticatedUserFunc != nil {
		return m.GetAuthenticatedUserFunc(ctx)
	}
	return "", nil
}

// Reset clears all recorded calls
func (m *MockClient) Reset() {
	m.Calls = make([]MockCall, 0)
}

// CallCount returns the number of times a method was called
func (m *MockClient) CallCount(method string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == method {
			count++
		}
	}
	return count
}
