package services

import (
	"sync"
	"time"

	"apartment-rental-portal/internal/domain/models"

	"github.com/google/uuid"
)

// memorySessionEntry 进程内会话条目
type memorySessionEntry struct {
	session   Session
	expiresAt time.Time
}

// MemorySessionService 进程内会话存储，Redis不可用时的降级实现，
// 也用于测试环境
type MemorySessionService struct {
	mu       sync.RWMutex
	sessions map[string]memorySessionEntry
	ttl      time.Duration
}

// NewMemorySessionService 创建进程内会话存储
func NewMemorySessionService(ttl time.Duration) *MemorySessionService {
	return &MemorySessionService{
		sessions: make(map[string]memorySessionEntry),
		ttl:      ttl,
	}
}

// 1 Create 为用户创建新会话并返回不透明令牌
func (s *MemorySessionService) Create(user *models.User) (*Session, error) {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = memorySessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return &session, nil
}

// 2 Get 根据令牌取回会话，过期条目按不存在处理
func (s *MemorySessionService) Get(token string) (*Session, error) {
	s.mu.RLock()
	entry, exists := s.sessions[token]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	session := entry.session
	return &session, nil
}

// 3 Destroy 删除会话（登出）
func (s *MemorySessionService) Destroy(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
