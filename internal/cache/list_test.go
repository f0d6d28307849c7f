package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dante/internal/cache"
)

type item struct {
	ID   string
	Name string
}

func (i item) Key() string { return i.ID }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestList_AddUpdateRemoveScenario(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()

	require.True(t, l.Prepend(gen, item{ID: "p1", Name: "Acme"}))
	require.Equal(t, []item{{ID: "p1", Name: "Acme"}}, l.Items())

	require.True(t, l.ReplaceByKey(gen, item{ID: "p1", Name: "Acme2"}))
	require.Equal(t, []item{{ID: "p1", Name: "Acme2"}}, l.Items())

	require.True(t, l.RemoveByKey(gen, "p1"))
	assert.Empty(t, l.Items())
}

func TestList_PrependAndAppendOrder(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()
	require.True(t, l.Replace(gen, []item{{ID: "b"}, {ID: "c"}}))
	l.Prepend(gen, item{ID: "a"})
	l.Append(gen, item{ID: "d"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(l.Items()))
}

func TestList_UpdateUnknownKeyLeavesListUnchanged(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()
	l.Replace(gen, []item{{ID: "a", Name: "x"}, {ID: "b", Name: "y"}})
	before := l.Items()

	assert.False(t, l.ReplaceByKey(gen, item{ID: "zzz", Name: "new"}))
	assert.Equal(t, before, l.Items())
}

func TestList_UpdateCollapsesDuplicates(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()
	l.Replace(gen, []item{{ID: "a"}, {ID: "b"}, {ID: "a"}})

	require.True(t, l.ReplaceByKey(gen, item{ID: "a", Name: "new"}))
	assert.Equal(t, []item{{ID: "a", Name: "new"}, {ID: "b"}}, l.Items())
}

func TestList_AddThenRemoveRestoresIDSet(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()
	l.Replace(gen, []item{{ID: "a"}, {ID: "b"}})

	l.Prepend(gen, item{ID: "n"})
	l.RemoveByKey(gen, "n")
	assert.ElementsMatch(t, []string{"a", "b"}, ids(l.Items()))
}

func TestList_StaleGenerationDropped(t *testing.T) {
	l := cache.New[item]()
	gen := l.Generation()
	l.Reset()

	assert.False(t, l.Replace(gen, []item{{ID: "late"}}))
	assert.False(t, l.Prepend(gen, item{ID: "late"}))
	assert.False(t, l.Append(gen, item{ID: "late"}))
	assert.Empty(t, l.Items())
}

func TestList_ItemsIsACopy(t *testing.T) {
	l := cache.New[item]()
	l.Replace(l.Generation(), []item{{ID: "a"}})
	got := l.Items()
	got[0].Name = "mutated"
	v, ok := l.Find("a")
	require.True(t, ok)
	assert.Empty(t, v.Name)
}

func TestList_ResetIsIdempotent(t *testing.T) {
	l := cache.New[item]()
	l.Replace(l.Generation(), []item{{ID: "a"}})
	l.Reset()
	l.Reset()
	assert.Zero(t, l.Len())
}
