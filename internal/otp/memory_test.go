package otp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IssueVerify(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	code, err := s.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
	assert.GreaterOrEqual(t, code, "100000")

	ok, err := s.Verify(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// Single use.
	ok, err = s.Verify(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_WrongCodeKeepsEntry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	code, err := s.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	ok, err := s.Verify(ctx, "alice@example.com", wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	// The pending code survives a failed attempt.
	ok, err = s.Verify(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_ReissueReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	second, err := s.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	if first != second {
		ok, err := s.Verify(ctx, "alice@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	ok, err := s.Verify(ctx, "alice@example.com", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_KeysIndependent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	a, err := s.Issue(ctx, "a@example.com")
	require.NoError(t, err)
	b, err := s.Issue(ctx, "b@example.com")
	require.NoError(t, err)
	if a == b {
		t.Skip("code collision")
	}

	ok, err := s.Verify(ctx, "b@example.com", a)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Verify(ctx, "b@example.com", b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	code, err := s.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "alice@example.com"))

	ok, err := s.Verify(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}
