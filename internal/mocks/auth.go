package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/domain/auth"
)

// ======================================================
// Token service
// ======================================================

type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenService) Issue(userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	c, _ := args.Get(0).(*auth.Claims)
	return c, args.Error(1)
}

func (m *MockTokenService) Revoke(ctx context.Context, claims *auth.Claims) error {
	return m.Called(ctx, claims).Error(0)
}

// ======================================================
// Password hasher
// ======================================================

// PlainHasher prefixes the password so tests can read hashes.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (PlainHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

// ======================================================
// Audit sink
// ======================================================

type RecordingSink struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (s *RecordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
}

func (s *RecordingSink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.Events))
	for _, ev := range s.Events {
		out = append(out, ev.Action)
	}
	return out
}

var (
	_ auth.TokenService   = (*MockTokenService)(nil)
	_ auth.PasswordHasher = PlainHasher{}
	_ audit.Sink          = (*RecordingSink)(nil)
)
