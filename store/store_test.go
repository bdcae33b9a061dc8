package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]State {
	t.Helper()
	lite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = lite.Close() })
	mem, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mem.Close() })
	return map[string]State{
		"mock":          NewMockState(),
		"sqlite":        lite,
		"sqlite-memory": mem,
	}
}

func TestStateBasics(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := st.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, st.Set(ctx, "\x01org:a", []byte("meta")))
			require.NoError(t, st.Set(ctx, "\x02org:a", nil))
			v, ok, err := st.Get(ctx, "\x01org:a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("meta"), v)

			v, ok, err = st.Get(ctx, "\x02org:a")
			require.NoError(t, err)
			assert.True(t, ok, "an empty value is still stored")
			assert.Empty(t, v)

			require.NoError(t, st.Delete(ctx, "\x01org:a"))
			_, ok, err = st.Get(ctx, "\x01org:a")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.ErrorIs(t, st.Set(ctx, "", []byte("x")), ErrEmptyKey)
		})
	}
}

func TestStateKeys(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			keys := []string{
				"\x10org:a|\x00\x00\x00\x00\x00\x00\x01\x00",
				"\x10org:a|\x00\x00\x00\x00\x00\x00\x00\x02",
				"\x10org:a|\x00\x00\x00\x00\x00\x00\x00\xff",
				"\x10org:b|\x00\x00\x00\x00\x00\x00\x00\x00",
				"\x05org:a|hive:bob",
			}
			for _, k := range keys {
				require.NoError(t, st.Set(ctx, k, []byte{1}))
			}
			got, err := st.Keys(ctx, "\x10org:a|")
			require.NoError(t, err)
			assert.Equal(t, []string{keys[1], keys[2], keys[0]}, got)

			all, err := st.Keys(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, len(keys))

			none, err := st.Keys(ctx, "\x11")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestStateApply(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Set(ctx, "stale", []byte("x")))

			b := &Batch{}
			b.Set("a", []byte("1"))
			b.Set("b", []byte("2"))
			b.Delete("stale")
			assert.Equal(t, 3, b.Len())
			require.NoError(t, st.Apply(ctx, b))

			keys, err := st.Keys(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			bad := &Batch{}
			bad.Set("c", []byte("3"))
			bad.Set("", []byte("oops"))
			assert.ErrorIs(t, st.Apply(ctx, bad), ErrEmptyKey)
			_, ok, err := st.Get(ctx, "c")
			require.NoError(t, err)
			assert.False(t, ok, "a failed batch writes nothing")
		})
	}
}

func TestFileMockState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	st, err := NewFileMockState(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, "\x10org:a|\x00\x00\x00\x00\x00\x00\x00\x80", []byte("binary key")))
	require.NoError(t, st.Set(ctx, "plain", []byte("v")))

	again, err := NewFileMockState(path)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
	v, ok, err := again.Get(ctx, "\x10org:a|\x00\x00\x00\x00\x00\x00\x00\x80")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("binary key"), v)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, "\x10org:a}", prefixEnd("\x10org:a|"))
	assert.Equal(t, "b", prefixEnd("a\xff"))
	assert.Equal(t, "", prefixEnd("\xff\xff"))
}

func TestOpenSQLiteNeedsPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}
