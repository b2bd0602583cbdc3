package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetAndGet(t *testing.T) {
	s := New()

	s.Set("key", "value", time.Minute)

	got, ok := s.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestStoreGetMissing(t *testing.T) {
	s := New()

	got, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStoreExpiry(t *testing.T) {
	s := New()

	s.Set("key", "value", 10*time.Millisecond)

	_, ok := s.Get("key")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	// 过期后视为不存在
	_, ok = s.Get("key")
	assert.False(t, ok)
}

func TestStoreNoTTLNeverExpires(t *testing.T) {
	s := New()

	s.Set("key", "value", 0)
	time.Sleep(10 * time.Millisecond)

	_, ok := s.Get("key")
	assert.True(t, ok)
}

func TestStoreOverwrite(t *testing.T) {
	s := New()

	s.Set("key", "old", time.Minute)
	s.Set("key", "new", time.Minute)

	got, _ := s.Get("key")
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, s.Len())
}

func TestStoreDelete(t *testing.T) {
	s := New()

	s.Set("key", "value", time.Minute)
	s.Delete("key")

	_, ok := s.Get("key")
	assert.False(t, ok)
}

func TestStorePurgeExpired(t *testing.T) {
	s := New()

	s.Set("expired", "value", 10*time.Millisecond)
	s.Set("alive", "value", time.Minute)

	time.Sleep(20 * time.Millisecond)

	purged := s.PurgeExpired()
	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get("alive")
	assert.True(t, ok)
}

func TestStoreClear(t *testing.T) {
	s := New()

	s.Set("a", 1, time.Minute)
	s.Set("b", 2, time.Minute)
	s.Clear()

	assert.Equal(t, 0, s.Len())
}
