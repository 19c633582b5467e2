package compose_test

import (
	"fmt"

	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/keysym"
)

const rules = `
<Multi_key> <a> <p>  : "@"  at      # COMMERCIAL AT
<dead_acute> <a>     : "á"  aacute  # LATIN SMALL LETTER A WITH ACUTE
`

func Example() {
	table, err := compose.NewTableFromBuffer([]byte(rules), "C", compose.FormatTextV1,
		compose.CompileNoFlags)
	if err != nil {
		fmt.Println(err)
		return
	}
	state, _ := compose.NewState(table, compose.StateNoFlags)
	for _, name := range []string{"dead_acute", "Shift_L", "a"} {
		r := state.Feed(keysym.FromName(name))
		fmt.Printf("%-10s %-8s %s\n", name, r, state.Status())
	}
	fmt.Println(state.Text())
	// Output:
	// dead_acute accepted composing
	// Shift_L    ignored  composing
	// a          accepted composed
	// á
}

func ExampleTable_Iterator() {
	table, err := compose.NewTableFromBuffer([]byte(rules), "C", compose.FormatTextV1,
		compose.CompileNoFlags)
	if err != nil {
		fmt.Println(err)
		return
	}
	it := table.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		fmt.Println(e.Sequence(), e.UTF8(), e.Keysym())
	}
	// Output:
	// [dead_acute a] á aacute
	// [Multi_key a p] @ at
}
