package compose

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/compose/keysym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "abcdefghij"

// seqOf converts a string of letters to keysyms. Keysyms of ASCII letters
// are identical to their code-points.
func seqOf(key string) []keysym.Keysym {
	seq := make([]keysym.Keysym, len(key))
	for i, c := range []byte(key) {
		seq[i] = keysym.Keysym(c)
	}
	return seq
}

func keyOf(seq []keysym.Keysym) string {
	var b strings.Builder
	for _, ks := range seq {
		b.WriteByte(byte(ks))
	}
	return b.String()
}

// modelInsert is a reference implementation of the insertion rules on a map.
func modelInsert(model map[string]string, key, out string) error {
	for k := range model {
		if k != key && strings.HasPrefix(k, key) {
			return ErrPrefixOfExisting
		}
		if k != key && strings.HasPrefix(key, k) {
			return ErrExistingIsPrefix
		}
	}
	if old, ok := model[key]; ok {
		if old == out {
			return ErrDuplicateSequence
		}
		model[key] = out
		return ErrOverriding
	}
	model[key] = out
	return nil
}

// randomTable inserts n random sequences, mostly of length 4, into a new
// table, checking every insertion against modelInsert.
func randomTable(t *testing.T, n int) (*Table, map[string]string) {
	t.Helper()
	rnd := rand.New(rand.NewSource(4711))
	table := newTable("C")
	b := newBuilder(table, DefaultMaxNodes)
	model := make(map[string]string)
	for i := 0; i < n; i++ {
		l := 4
		switch rnd.Intn(20) {
		case 0:
			l = 2
		case 1:
			l = 3
		case 2:
			l = 5
		}
		key := make([]byte, l)
		for j := range key {
			key[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		out := fmt.Sprintf("#%d", i%100)
		err := b.insert(seqOf(string(key)), out, keysym.NoSymbol)
		require.Equal(t, modelInsert(model, string(key), out), err, "inserting %s", key)
	}
	require.Equal(t, len(model), table.Len())
	t.Logf("random table has %d entries in %d nodes", table.Len(), len(table.nodes))
	return table, model
}

// walk is the recursive reference traversal.
func walk(t *Table, n uint32, prefix []keysym.Keysym, emit func([]keysym.Keysym, leafNode)) {
	if n == 0 {
		return
	}
	nd := t.nodes[n]
	walk(t, nd.lokid, prefix, emit)
	seq := append(append([]keysym.Keysym(nil), prefix...), nd.keysym)
	if leaf, ok := nd.payload.(leafNode); ok {
		emit(seq, leaf)
	} else {
		walk(t, t.eqkid(n), seq, emit)
	}
	walk(t, nd.hikid, prefix, emit)
}

func TestIteratorCompleteness(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	table, model := randomTable(t, 6000)
	require.Greater(t, table.Len(), 1000)
	var expected []string
	if len(table.nodes) > 1 {
		walk(table, 1, nil, func(seq []keysym.Keysym, leaf leafNode) {
			expected = append(expected, keyOf(seq)+"="+table.str(leaf.utf8))
		})
	}
	var entries []string
	it := table.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		entries = append(entries, keyOf(e.Sequence())+"="+e.UTF8())
		assert.Equal(t, keysym.NoSymbol, e.Keysym())
	}
	assert.Equal(t, expected, entries)
	var fromModel []string
	for k, v := range model {
		fromModel = append(fromModel, k+"="+v)
	}
	sort.Strings(fromModel)
	assert.Equal(t, fromModel, entries)
	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator must stay exhausted")
}

func TestIteratorEntries(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	table, _ := compile(t, sample+"\n<dead_tilde> <n> : ntilde\n")
	it := table.Iterator()
	type entry struct {
		seq  []keysym.Keysym
		ks   keysym.Keysym
		text string
	}
	var entries []entry
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		seq := append([]keysym.Keysym(nil), e.Sequence()...)
		entries = append(entries, entry{seq, e.Keysym(), e.UTF8()})
	}
	k := keysym.FromName
	assert.Equal(t, []entry{
		{[]keysym.Keysym{k("dead_acute"), k("a")}, k("aacute"), "á"},
		{[]keysym.Keysym{k("dead_tilde"), k("n")}, k("ntilde"), ""},
		{[]keysym.Keysym{k("Multi_key"), k("a"), k("p")}, k("at"), "@"},
	}, entries)
}

func TestIteratorEmpty(t *testing.T) {
	table, _ := compile(t, "")
	_, ok := table.Iterator().Next()
	assert.False(t, ok)
	table, _ = compile(t, "<a> : \"x\"")
	it := table.Iterator()
	e, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []keysym.Keysym{keysym.FromName("a")}, e.Sequence())
	_, ok = it.Next()
	assert.False(t, ok)
}
