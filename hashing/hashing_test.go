package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "string with spaces",
			input:    HashableString("hello world"),
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:     "empty bytes",
			input:    HashableBytes([]byte{}),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple bytes",
			input:    HashableBytes([]byte("hello")),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXXH3(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		second, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first)
	})

	t.Run("different inputs differ", func(t *testing.T) {
		t.Parallel()

		a, err := XXH3(HashableString("hello"))
		require.NoError(t, err)

		b, err := XXH3(HashableString("world"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("hashes ints by value", func(t *testing.T) {
		t.Parallel()

		a, err := XXH3(HashableInt(1))
		require.NoError(t, err)

		b, err := XXH3(HashableInt(2))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})
}

var errUpdateFailed = errors.New("update failed")

type failingHashable struct{}

func (f failingHashable) UpdateHash(h hash.Hash) error {
	return errUpdateFailed
}

func TestHashFuncErrors(t *testing.T) {
	t.Parallel()

	_, err := Sha256(failingHashable{})
	require.ErrorIs(t, err, errUpdateFailed)

	_, err = XXH3(failingHashable{})
	require.ErrorIs(t, err, errUpdateFailed)
}

func TestHashableEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("a").Equals("a"))
	assert.False(t, HashableString("a").Equals("b"))

	assert.True(t, HashableInt(1).Equals(1))
	assert.False(t, HashableInt(1).Equals(2))
}
