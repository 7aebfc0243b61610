package bimap_test

import (
	"testing"

	"tracker/internal/pkg/bimap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInverse checks that every forward entry has its reverse entry and
// that the total matches Len.
func assertInverse(t *testing.T, m *bimap.OneToMany[string, string], keys ...string) {
	t.Helper()

	total := 0
	for _, k := range keys {
		for _, v := range m.Values(k) {
			key, ok := m.KeyOf(v)
			require.True(t, ok, "value %s has no reverse entry", v)
			assert.Equal(t, k, key)
			total++
		}
		assert.Len(t, m.Values(k), m.Count(k))
	}
	assert.Equal(t, total, m.Len())
}

func TestOneToMany_Link(t *testing.T) {
	t.Run("should relate values to a key in both directions", func(t *testing.T) {
		m := bimap.New[string, string]()

		_, had := m.Link("P1", "O2")
		assert.False(t, had)
		m.Link("P1", "O1")

		assert.Equal(t, []string{"O1", "O2"}, m.Values("P1"))
		assert.Equal(t, 2, m.Count("P1"))
		assert.True(t, m.Contains("P1", "O1"))
		assertInverse(t, m, "P1")
	})

	t.Run("should be idempotent for an existing pair", func(t *testing.T) {
		m := bimap.New[string, string]()
		m.Link("P1", "O1")

		previous, had := m.Link("P1", "O1")

		assert.True(t, had)
		assert.Equal(t, "P1", previous)
		assert.Equal(t, 1, m.Count("P1"))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("should move a value to its new key", func(t *testing.T) {
		m := bimap.New[string, string]()
		m.Link("P1", "O1")
		m.Link("P1", "O2")

		previous, had := m.Link("P2", "O1")

		assert.True(t, had)
		assert.Equal(t, "P1", previous)
		assert.Equal(t, []string{"O2"}, m.Values("P1"))
		assert.Equal(t, []string{"O1"}, m.Values("P2"))
		assertInverse(t, m, "P1", "P2")
	})
}

func TestOneToMany_Unlink(t *testing.T) {
	m := bimap.New[string, string]()
	m.Link("P1", "O1")

	key, ok := m.Unlink("O1")
	require.True(t, ok)
	assert.Equal(t, "P1", key)
	assert.Empty(t, m.Values("P1"))
	assert.Zero(t, m.Len())

	_, ok = m.Unlink("O1")
	assert.False(t, ok)
}

func TestOneToMany_RemoveKey(t *testing.T) {
	m := bimap.New[string, string]()
	m.Link("P1", "O1")
	m.Link("P1", "O2")
	m.Link("P2", "O3")

	removed := m.RemoveKey("P1")

	assert.Equal(t, []string{"O1", "O2"}, removed)
	assert.Equal(t, 0, m.Count("P1"))
	_, ok := m.KeyOf("O1")
	assert.False(t, ok)
	assertInverse(t, m, "P1", "P2")
	assert.Empty(t, m.RemoveKey("unknown"))
}

func TestOneToMany_ValuesOfUnknownKeyIsEmptyNotNil(t *testing.T) {
	m := bimap.New[string, string]()

	values := m.Values("nobody")

	assert.NotNil(t, values)
	assert.Empty(t, values)
}
