package handlers

import (
	"context"
	"sync"

	"ai-search-api/core/domain"
)

// mockSearchService is a mock implementation of interfaces.SearchService
type mockSearchService struct {
	SearchFunc func(ctx context.Context, query string, page int) (*domain.ResultPage, error)

	mu        sync.Mutex
	lastQuery string
	lastPage  int
}

func (m *mockSearchService) Search(ctx context.Context, query string, page int) (*domain.ResultPage, error) {
	m.mu.Lock()
	m.lastQuery, m.lastPage = query, page
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return &domain.ResultPage{Query: query}, nil
}

// mockSuggestionService is a mock implementation of interfaces.SuggestionService
type mockSuggestionService struct {
	SuggestFunc func(query string) []string
}

func (m *mockSuggestionService) Suggest(query string) []string {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(query)
	}
	return []string{}
}

// recordingLogger captures error-level messages
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Warn(string, map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}
