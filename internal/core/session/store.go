package session

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Authenticator は認証エンドポイントへの窓口です。emsapi.Gateway が実装します。
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

// Storage はセッションの永続化先です。トークンとユーザー識別は常に
// まとめて書き込まれ、まとめて消去されます。
type Storage interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// Store はセッションのライフサイクル (login / restore / logout) を持ちます。
type Store struct {
	auth    Authenticator
	storage Storage
	log     *logrus.Entry

	mu      sync.RWMutex
	current *Session
}

// NewStore は Store を生成します。
func NewStore(auth Authenticator, storage Storage, log *logrus.Entry) *Store {
	return &Store{auth: auth, storage: storage, log: log}
}

// Login は認証を行いセッションを確立します。ユーザー名・パスワードの
// いずれかが空の場合はネットワーク呼び出しを行わずに拒否します。
func (s *Store) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	sess, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Token == "" {
		return nil, ErrInvalidServerSession
	}

	if err := s.storage.Save(sess); err != nil {
		// 永続化に失敗してもメモリー上のセッションでの継続は可能です。
		s.log.WithError(err).Warn("failed to persist session")
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.log.WithField("username", sess.Username).Info("session established")
	return sess, nil
}

// Restore は起動時に永続化されたセッションを復元します。トークンと
// ユーザー識別の両方が揃っていなければ nil を返します。
func (s *Store) Restore() *Session {
	sess, err := s.storage.Load()
	if err != nil {
		s.log.WithError(err).Warn("failed to load persisted session")
		return nil
	}
	if sess == nil || sess.Token == "" || sess.Username == "" {
		return nil
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.log.WithField("username", sess.Username).Info("session restored")
	return sess
}

// Logout はセッションを破棄します。未認証画面への切り替えは呼び出し側の
// 責務です。
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.log.WithError(err).Warn("failed to clear persisted session")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.log.Info("session cleared")
}

// Current は現在のセッションを返します。未認証のときは nil です。
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated は認証済みかどうかを返します。
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}
