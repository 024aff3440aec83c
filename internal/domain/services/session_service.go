package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"apartment-rental-portal/internal/domain/models"
	"apartment-rental-portal/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrSessionNotFound 表示令牌对应的会话不存在或已过期
var ErrSessionNotFound = errors.New("会话不存在或已过期")

// Session 表示服务端保存的会话状态，客户端只持有不透明令牌
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// InterfaceSessionService 定义会话服务接口
type InterfaceSessionService interface {
	Create(user *models.User) (*Session, error)
	Get(token string) (*Session, error)
	Destroy(token string) error
}

// SessionService 基于Redis的会话存储
type SessionService struct {
	Client *redis.Client
	Ctx    context.Context
	TTL    time.Duration
}

// NewSessionService 创建会话服务。Redis不可用时降级为进程内存储
func NewSessionService(cfg *config.Config) InterfaceSessionService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	// 测试Redis连接
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis连接测试失败: %v，会话将保存在进程内存中", err)
		return NewMemorySessionService(cfg.SessionTTL)
	}

	return &SessionService{
		Client: client,
		Ctx:    ctx,
		TTL:    cfg.SessionTTL,
	}
}

// sessionKey 生成会话在Redis中的键名
func sessionKey(token string) string {
	return "session:" + token
}

// 1 Create 为用户创建新会话并返回不透明令牌
func (s *SessionService) Create(user *models.User) (*Session, error) {
	session := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: time.Now(),
	}

	jsonValue, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	if err := s.Client.Set(s.Ctx, sessionKey(session.Token), jsonValue, s.TTL).Err(); err != nil {
		return nil, err
	}

	return session, nil
}

// 2 Get 根据令牌取回会话
func (s *SessionService) Get(token string) (*Session, error) {
	val, err := s.Client.Get(s.Ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// 3 Destroy 删除会话（登出）
func (s *SessionService) Destroy(token string) error {
	return s.Client.Del(s.Ctx, sessionKey(token)).Err()
}
