package auth_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/dental-records/internal/auth"
)

func TestRandomTokenGenerator(t *testing.T) {
	gen := auth.NewTokenGenerator()

	t.Run("fixed length url safe token", func(t *testing.T) {
		token, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, token, auth.SessionTokenLength)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, auth.SessionTokenBytes)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
	})

	t.Run("tokens do not repeat", func(t *testing.T) {
		const samples = 10000
		seen := make(map[string]struct{}, samples)
		for i := 0; i < samples; i++ {
			token, err := gen.Generate()
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup, "duplicate token after %d samples", i)
			seen[token] = struct{}{}
		}
	})
}
