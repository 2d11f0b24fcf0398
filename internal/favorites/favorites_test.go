package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eabrahm-wq/GameDirectory/internal/store"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := Set{"wordle", "worldle"}

	added := Toggle(s, "travle")
	assert.Equal(t, Set{"wordle", "worldle", "travle"}, added)

	removed := Toggle(added, "wordle")
	assert.Equal(t, Set{"worldle", "travle"}, removed)

	assert.Equal(t, Set{"wordle", "worldle"}, s, "input must not change")
	assert.Equal(t, Set{"wordle", "worldle", "travle"}, added, "input must not change")
}

func TestToggleTwiceIsNoOp(t *testing.T) {
	for _, s := range []Set{{}, {"a"}, {"a", "b", "c"}} {
		for _, id := range []string{"a", "b", "z"} {
			assert.True(t, s.Equal(Toggle(Toggle(s, id), id)), "set=%v id=%s", s, id)
		}
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	assert.True(t, Set{"a", "b"}.Equal(Set{"b", "a"}))
	assert.False(t, Set{"a", "b"}.Equal(Set{"a"}))
	assert.False(t, Set{"a", "b"}.Equal(Set{"a", "c"}))
}

func TestToggleDoesNotAliasInput(t *testing.T) {
	base := make(Set, 1, 8)
	base[0] = "a"
	x := Toggle(base, "b")
	y := Toggle(base, "c")
	assert.Equal(t, Set{"a", "b"}, x)
	assert.Equal(t, Set{"a", "c"}, y)
}

func TestDecode(t *testing.T) {
	tests := map[string]Set{
		``:                    {},
		`not json`:            {},
		`{"a":1}`:             {},
		`"wordle"`:            {},
		`null`:                {},
		`[]`:                  {},
		`["a","b"]`:           {"a", "b"},
		`["a",1,null,"b",{}]`: {"a", "b"},
		`["a","a"]`:           {"a"},
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, want, Decode(raw))
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, `[]`, Encode(nil))
	assert.Equal(t, `["a","b"]`, Encode(Set{"a", "b"}))
	assert.Equal(t, Set{"a", "b"}, Decode(Encode(Set{"a", "b"})))
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryStore()
	s := NewStore(backend)

	assert.Empty(t, s.Load(ctx))

	s.Save(ctx, Set{"wordle", "globle"})
	assert.Equal(t, Set{"wordle", "globle"}, s.Load(ctx))

	raw, ok, err := backend.GetItem(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["wordle","globle"]`, raw)

	assert.Equal(t, Set{"globle"}, s.Toggle(ctx, "wordle"))
	assert.Equal(t, Set{"globle"}, s.Load(ctx))
}

func TestLoadCorruptedIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryStore()
	require.NoError(t, backend.SetItem(ctx, Key, `{broken`))
	assert.Equal(t, Set{}, NewStore(backend).Load(ctx))
}

type failing struct{}

func (failing) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failing) SetItem(context.Context, string, string) error { return errors.New("read-only") }

func TestBackendErrorsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	s := NewStore(failing{})
	assert.Equal(t, Set{}, s.Load(ctx))
	assert.NotPanics(t, func() { s.Save(ctx, Set{"a"}) })
	assert.Equal(t, Set{"a"}, s.Toggle(ctx, "a"))
}

func TestNilBackendIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	s.Save(ctx, Set{"a"})
	assert.Equal(t, Set{}, s.Load(ctx))

	var nilStore *Store
	assert.Equal(t, Set{}, nilStore.Load(ctx))
	assert.NotPanics(t, func() { nilStore.Save(ctx, Set{"a"}) })
}
