package app

import (
	"sync"

	"afrilance_backend/internal/email"
)

// MockEmailProvider records sent messages instead of delivering them.
type MockEmailProvider struct {
	mu   sync.Mutex
	Sent []email.Message
}

func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{}
}

func (m *MockEmailProvider) Send(msg email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentCount returns how many messages were recorded.
func (m *MockEmailProvider) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
