package portal

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"agrimate/common/log"
)

// Storage is the portal's local cache, the desktop analog of browser local
// storage. Failures are logged and swallowed; a broken cache never breaks a
// render.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Logger().Errorf("create cache dir %s: %s", dir, err.Error())
	}
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	// keys are fixed constants, but keep path traversal out anyway
	key = strings.ReplaceAll(key, string(os.PathSeparator), "-")
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Logger().Errorf("read cache %s: %s", key, err.Error())
		}
		return nil, false
	}
	return raw, true
}

func (s *FileStorage) Set(key string, value []byte) {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		log.Logger().Errorf("write cache %s: %s", key, err.Error())
	}
}

// MemStorage keeps entries in memory; used by tests and one-shot commands.
type MemStorage struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{entries: make(map[string][]byte)}
}

func (s *MemStorage) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *MemStorage) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}
