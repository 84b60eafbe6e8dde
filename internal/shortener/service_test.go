package shortener_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jaevor/go-nanoid"
	"github.com/serroba/linkbox/internal/shortener"
	"github.com/serroba/linkbox/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{9}$`)

// countingStore wraps a repository and records insert attempts.
type countingStore struct {
	shortener.Repository
	inserts int
	err     error
}

func (c *countingStore) Insert(ctx context.Context, link *shortener.ShortLink) error {
	c.inserts++
	if c.err != nil {
		return c.err
	}

	return c.Repository.Insert(ctx, link)
}

func newService(t *testing.T, repo shortener.Repository) *shortener.Service {
	t.Helper()

	gen, err := nanoid.Standard(9)
	require.NoError(t, err)

	return shortener.NewService(repo, gen, 3)
}

func fixedCode(code string) shortener.CodeGenerator {
	return func() string { return code }
}

func TestService_Create(t *testing.T) {
	t.Run("stores a resolvable link", func(t *testing.T) {
		s := newService(t, store.NewMemoryStore())

		link, err := s.Create(context.Background(), "https://example.com")
		require.NoError(t, err)

		got, err := s.Resolve(context.Background(), link.Code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.TargetURL)
		assert.NotZero(t, got.ID)
	})

	t.Run("generates 9 character codes from the url-safe alphabet", func(t *testing.T) {
		s := newService(t, store.NewMemoryStore())

		for range 50 {
			link, err := s.Create(context.Background(), "https://example.com")
			require.NoError(t, err)
			assert.Regexp(t, codePattern, string(link.Code))
		}
	})

	t.Run("does not deduplicate identical targets", func(t *testing.T) {
		counting := &countingStore{Repository: store.NewMemoryStore()}
		s := newService(t, counting)

		first, err := s.Create(context.Background(), "https://example.com")
		require.NoError(t, err)
		second, err := s.Create(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.NotEqual(t, first.Code, second.Code)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 2, counting.inserts)

		for _, link := range []*shortener.ShortLink{first, second} {
			got, err := s.Resolve(context.Background(), link.Code)
			require.NoError(t, err)
			assert.Equal(t, link.ID, got.ID)
		}
	})

	t.Run("rejects invalid urls without writing", func(t *testing.T) {
		counting := &countingStore{Repository: store.NewMemoryStore()}
		s := newService(t, counting)

		for _, raw := range []string{"", "%zz", "http://[::1", ":no-scheme", "bad\x7furl"} {
			link, err := s.Create(context.Background(), raw)

			assert.Nil(t, link, raw)
			assert.ErrorIs(t, err, shortener.ErrInvalidURL, raw)
		}

		assert.Equal(t, 0, counting.inserts)
	})

	t.Run("accepts loose relative references", func(t *testing.T) {
		s := newService(t, store.NewMemoryStore())

		link, err := s.Create(context.Background(), "not a url with spaces and no scheme???")

		require.NoError(t, err)
		assert.Equal(t, "not a url with spaces and no scheme???", link.TargetURL)
	})

	t.Run("retries on code clash", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		require.NoError(t, memStore.Insert(context.Background(), &shortener.ShortLink{
			Code:      "taken0000",
			TargetURL: "https://old.example.com",
		}))

		codes := []string{"taken0000", "fresh0000"}
		gen := func() string {
			c := codes[0]
			codes = codes[1:]

			return c
		}

		s := shortener.NewService(memStore, gen, 3)

		link, err := s.Create(context.Background(), "https://new.example.com")

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("fresh0000"), link.Code)

		old, err := s.Resolve(context.Background(), "taken0000")
		require.NoError(t, err)
		assert.Equal(t, "https://old.example.com", old.TargetURL)
	})

	t.Run("fails after exhausting attempts", func(t *testing.T) {
		counting := &countingStore{Repository: store.NewMemoryStore()}
		require.NoError(t, counting.Repository.Insert(context.Background(), &shortener.ShortLink{
			Code:      "taken0000",
			TargetURL: "https://old.example.com",
		}))

		s := shortener.NewService(counting, fixedCode("taken0000"), 3)

		link, err := s.Create(context.Background(), "https://example.com")

		assert.Nil(t, link)
		assert.ErrorIs(t, err, shortener.ErrCollisionExhausted)
		assert.Equal(t, 3, counting.inserts)
	})

	t.Run("treats non-positive attempts as a single try", func(t *testing.T) {
		counting := &countingStore{Repository: store.NewMemoryStore(), err: shortener.ErrDuplicateCode}
		s := shortener.NewService(counting, fixedCode("abc123xyz"), 0)

		_, err := s.Create(context.Background(), "https://example.com")

		assert.ErrorIs(t, err, shortener.ErrCollisionExhausted)
		assert.Equal(t, 1, counting.inserts)
	})

	t.Run("wraps store failures without retrying", func(t *testing.T) {
		boom := errors.New("disk full")
		counting := &countingStore{Repository: store.NewMemoryStore(), err: boom}
		s := newService(t, counting)

		link, err := s.Create(context.Background(), "https://example.com")

		assert.Nil(t, link)
		assert.ErrorIs(t, err, shortener.ErrStorage)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, counting.inserts)
	})
}

type failingFinder struct {
	shortener.Repository
	err error
}

func (f failingFinder) FindByCode(_ context.Context, _ shortener.Code) (*shortener.ShortLink, error) {
	return nil, f.err
}

func TestService_Resolve(t *testing.T) {
	t.Run("returns ErrNotFound for unknown codes", func(t *testing.T) {
		s := newService(t, store.NewMemoryStore())

		link, err := s.Resolve(context.Background(), "nonexistentcode")

		assert.Nil(t, link)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("matches codes case-sensitively", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		s := shortener.NewService(memStore, fixedCode("AbCdEfGhI"), 1)

		_, err := s.Create(context.Background(), "https://example.com")
		require.NoError(t, err)

		_, err = s.Resolve(context.Background(), "abcdefghi")
		assert.ErrorIs(t, err, shortener.ErrNotFound)

		_, err = s.Resolve(context.Background(), "AbCdEfGhI")
		assert.NoError(t, err)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		s := newService(t, failingFinder{err: errors.New("connection reset")})

		link, err := s.Resolve(context.Background(), "abc123xyz")

		assert.Nil(t, link)
		assert.ErrorIs(t, err, shortener.ErrStorage)
		assert.NotErrorIs(t, err, shortener.ErrNotFound)
	})
}
