package token

import (
	"testing"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", ExpireMinutes: 60})

	signed, err := m.Generate(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := m.Validate(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserId)
	assert.WithinDuration(t, time.Now(), claims.IssuedTime(), 5*time.Second)
}

func TestValidateWrongSecret(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", ExpireMinutes: 60})
	other := NewManager(config.AuthConfig{Secret: "other-secret", ExpireMinutes: 60})

	signed, err := m.Generate(1)
	assert.NoError(t, err)

	_, err = other.Validate(signed)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	m := NewManager(config.AuthConfig{Secret: "test-secret", ExpireMinutes: 60})

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	// 有效期为负，签发即过期
	m := NewManager(config.AuthConfig{Secret: "test-secret", ExpireMinutes: -1})

	signed, err := m.Generate(1)
	assert.NoError(t, err)

	_, err = m.Validate(signed)
	assert.Error(t, err)
}
