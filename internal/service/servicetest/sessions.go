package servicetest

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/dental-records/internal/auth"
)

// NewSessionCache starts an in-process Redis and returns a session cache
// backed by it. The server is stopped when the test ends.
func NewSessionCache(t testing.TB) (*auth.RedisSessionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return auth.NewRedisSessionCache(client), mr
}

// SequenceTokens hands out a fixed list of tokens in order.
type SequenceTokens struct {
	Tokens []string
	next   int
}

func (s *SequenceTokens) Generate() (string, error) {
	token := s.Tokens[s.next%len(s.Tokens)]
	s.next++
	return token, nil
}
