package cache

import (
	"sync"
	"time"
)

// entry 缓存条目
type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Store 进程内键值缓存，条目写入后不再修改，按过期时间失效
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New 创建缓存
func New() *Store {
	return &Store{
		entries: make(map[string]entry),
	}
}

// Get 读取缓存，过期条目视为不存在
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set 写入缓存，ttl <= 0 时永不过期
func (s *Store) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.entries[key] = e
}

// Delete 删除缓存
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// PurgeExpired 清理过期条目，返回清理数量
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	purged := 0
	for key, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged
}

// Len 当前条目数量，包含已过期未清理的条目
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear 清空缓存
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}
