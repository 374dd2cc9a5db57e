package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"ai-search-api/core/domain"
	"ai-search-api/core/interfaces"
)

// mockProvider is a mock implementation of the SearchProvider interface
type mockProvider struct {
	mu        sync.Mutex
	calls     []interfaces.ProviderRequest
	fetchFunc func(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error)
}

func (m *mockProvider) FetchRawResults(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockCache is an in-memory Cache for tests
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *mockCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// mockLogger discards log output but records messages and their fields
type mockLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []map[string]interface{}
}

func (l *mockLogger) record(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
	l.mu.Unlock()
}

// fieldsOf returns the fields of the last entry logged with msg
func (l *mockLogger) fieldsOf(msg string) map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i] == msg {
			return l.fields[i]
		}
	}
	return nil
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg, fields) }
func (l *mockLogger) Info(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) { l.record(msg, fields) }
