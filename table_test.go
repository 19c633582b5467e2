package compose

import (
	"errors"
	"os"
	"testing"

	"github.com/npillmayer/compose/internal/testdata"
	"github.com/npillmayer/compose/parser"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enUSEntries = 19

func TestTableFormatAndFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := NewTableFromBuffer([]byte(sample), "C", Format(2), CompileNoFlags)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	_, err = NewTableFromBuffer([]byte(sample), "C", FormatTextV1, CompileFlags(4))
	assert.True(t, errors.Is(err, ErrUnknownFlags))
	_, err = NewTableFromReader(nil, "C", Format(0), CompileNoFlags)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	_, err = NewTableFromFile("/does/not/matter", "C", FormatTextV1, CompileFlags(1))
	assert.True(t, errors.Is(err, ErrUnknownFlags))
	_, err = NewTableFromLocale("C", CompileFlags(1))
	assert.True(t, errors.Is(err, ErrUnknownFlags))
}

func TestTableFromReader(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	r, err := testdata.ComposeReader("locale/en_US.UTF-8/Compose")
	require.NoError(t, err)
	table, err := NewTableFromReader(r, "en_US.UTF-8", FormatTextV1, CompileNoFlags,
		WithResolver(testResolver()))
	require.NoError(t, err)
	assert.Equal(t, enUSEntries, table.Len())
	assert.Equal(t, "en_US.UTF-8", table.Locale())
	s := newState(t, table)
	assert.Equal(t, StatusComposed, feed(s, "Multi_key", "less", "3"))
	assert.Equal(t, "♥", s.Text())
	s.Reset()
	assert.Equal(t, StatusComposed, feed(s, "Multi_key", "minus", "minus", "minus"))
	assert.Equal(t, "—", s.Text())
}

func TestTableFromFile(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	table, err := NewTableFromFile(testdata.ComposePath("locale/de_DE.UTF-8/Compose"),
		"de_DE.utf8", FormatTextV1, CompileNoFlags, WithResolver(testResolver()))
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", table.Locale())
	assert.Equal(t, enUSEntries+2, table.Len())
	//
	_, err = NewTableFromFile(testdata.ComposePath("no/such/file"), "C", FormatTextV1,
		CompileNoFlags, WithResolver(testResolver()))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func fromLocale(t *testing.T, loc string, env ...string) (*Table, []parser.Diagnostic, error) {
	t.Helper()
	var diags []parser.Diagnostic
	table, err := NewTableFromLocale(loc, CompileNoFlags,
		WithResolver(testResolver(env...)),
		WithDiagnostics(func(d parser.Diagnostic) {
			diags = append(diags, d)
		}))
	return table, diags, err
}

func TestTableFromLocale(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	// no user files
	table, diags, err := fromLocale(t, "en_US.utf8", "HOME", "")
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "en_US.UTF-8", table.Locale())
	assert.Equal(t, enUSEntries, table.Len())
	// C uses the Compose file of en_US.UTF-8
	table, _, err = fromLocale(t, "C", "HOME", "")
	require.NoError(t, err)
	assert.Equal(t, enUSEntries, table.Len())
	// alias
	table, _, err = fromLocale(t, "german", "HOME", "")
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", table.Locale())
	assert.Equal(t, enUSEntries+2, table.Len())
	// locale detected from the environment
	table, _, err = fromLocale(t, "", "HOME", "", "LANG", "de_DE.utf8")
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", table.Locale())
	// unknown locale
	_, _, err = fromLocale(t, "xx_XX", "HOME", "")
	assert.True(t, errors.Is(err, ErrNoComposeFile))
}

func TestTableFromLocaleReadFile(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	files := map[string]string{
		"/mem/locale.alias": "",
		"/mem/compose.dir":  "xx/Compose: xx_YY.UTF-8\n",
		"/mem/xx/Compose":   "<a> <b> : \"ab\"\ninclude \"%S/common\"\n",
		"/mem/common":       "<c> : \"c\"\n",
	}
	var read []string
	table, err := NewTableFromLocale("xx_YY.UTF-8", CompileNoFlags,
		WithResolver(testResolver("XLOCALEDIR", "/mem", "HOME", "")),
		WithReadFile(func(path string) ([]byte, error) {
			read = append(read, path)
			if data, ok := files[path]; ok {
				return []byte(data), nil
			}
			return nil, os.ErrNotExist
		}))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "xx_YY.UTF-8", table.Locale())
	assert.Contains(t, read, "/mem/locale.alias")
	assert.Contains(t, read, "/mem/compose.dir")
	assert.Contains(t, read, "/mem/common")
	s := newState(t, table)
	assert.Equal(t, StatusComposed, feed(s, "a", "b"))
	assert.Equal(t, "ab", s.Text())
}

func TestTableFromLocaleUserFiles(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	// $HOME/.config/XCompose takes precedence over $HOME/.XCompose
	table, _, err := fromLocale(t, "de_DE.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	// XDG_CONFIG_HOME without an XCompose file
	table, diags, err := fromLocale(t, "de_DE.UTF-8", "XDG_CONFIG_HOME", "/nonexistent")
	require.NoError(t, err)
	assert.Equal(t, enUSEntries+2+1, table.Len())
	require.Len(t, diags, 2)
	assert.Equal(t, ErrOverriding.Error(), diags[0].Message)
	assert.Equal(t, ErrPrefixOfExisting.Error(), diags[1].Message)
	assert.Equal(t, testdata.ComposePath("home/.XCompose"), diags[0].File)
	s := newState(t, table)
	assert.Equal(t, StatusComposed, feed(s, "Multi_key", "a", "p"))
	assert.Equal(t, "(at)", s.Text())
	s.Reset()
	assert.Equal(t, StatusComposed, feed(s, "dead_acute", "s"))
	assert.Equal(t, "ś", s.Text())
	s.Reset()
	assert.Equal(t, StatusComposed, feed(s, "Multi_key", "h", "h"))
	assert.Equal(t, "☺", s.Text())
	// $XCOMPOSEFILE comes first
	table, _, err = fromLocale(t, "de_DE.UTF-8", "XCOMPOSEFILE",
		testdata.ComposePath("locale/en_US.UTF-8/Compose"))
	require.NoError(t, err)
	assert.Equal(t, enUSEntries, table.Len())
}

func TestTableIncludeLoop(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	table, diags, err := fromLocale(t, "xx_LOOP.UTF-8", "HOME", "")
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, parser.ErrIncludeDepth), "expected include depth error, got %v", err)
	assert.NotEmpty(t, diags)
	//
	_, _, err = fromLocale(t, "xx_BROKEN.UTF-8", "HOME", "")
	assert.True(t, errors.Is(err, parser.ErrTooManyErrors), "expected too many errors, got %v", err)
}

func TestTableConcurrentStates(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	table, _, err := fromLocale(t, "en_US.UTF-8", "HOME", "")
	require.NoError(t, err)
	done := make(chan string)
	for _, seq := range [][]string{
		{"dead_acute", "a"},
		{"Multi_key", "s", "s"},
		{"dead_grave", "A"},
		{"dead_tilde", "dead_tilde"},
	} {
		go func(seq []string) {
			s, _ := NewState(table, StateNoFlags)
			for i := 0; i < 100; i++ {
				s.Reset()
				feed(s, seq...)
			}
			done <- s.Text()
		}(seq)
	}
	results := map[string]bool{}
	for i := 0; i < 4; i++ {
		results[<-done] = true
	}
	assert.Equal(t, map[string]bool{"á": true, "ß": true, "À": true, "~": true}, results)
}
