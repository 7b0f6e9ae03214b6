// Package state はセッションをローカルファイルに永続化します。
// トークンとユーザー識別は単一ファイルに同時に書き込まれるため、
// 部分的に永続化された状態は存在しません。
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ogurasousui/ems-console/internal/core/session"
)

// FileStore は session.Storage の実装であり、同時に rest.TokenSource として
// 現在のトークンを提供します。
type FileStore struct {
	path string

	mu      sync.RWMutex
	current *session.Session
}

// NewFileStore は FileStore を生成します。
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load は永続化されたセッションを読み込みます。ファイルが無い場合は
// (nil, nil) を返します。
func (f *FileStore) Load() (*session.Session, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("state: read %s: %w", f.path, err)
	}

	var sess session.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("state: parse %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.current = &sess
	f.mu.Unlock()

	return &sess, nil
}

// Save はセッション全体を書き込みます。一時ファイル経由のリネームで
// 書き込み途中の状態が観測されないようにします。
func (f *FileStore) Save(s *session.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("state: encode session: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("state: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.tmp")
	if err != nil {
		return fmt.Errorf("state: create temp file: %w", err)
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("state: write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: replace %s: %w", f.path, err)
	}

	f.mu.Lock()
	f.current = s
	f.mu.Unlock()

	return nil
}

// Clear は永続化されたセッションを消去します。ファイルが無くても
// エラーにはなりません。
func (f *FileStore) Clear() error {
	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("state: remove %s: %w", f.path, err)
	}
	return nil
}

// Token は現在のベアラートークンを返します。未認証のときは空文字列です。
func (f *FileStore) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current == nil {
		return ""
	}
	return f.current.Token
}
