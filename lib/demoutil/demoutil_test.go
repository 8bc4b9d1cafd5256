package demoutil

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
)

func TestJSONIndent(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	err := p.JSON(map[string]any{"title": "a <b>", "topics": []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "{\n  \"title\": \"a <b>\",\n  \"topics\": [\n    \"x\"\n  ]\n}\n", out.String())
}

func TestSection(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).Section("Done")
	require.Equal(t, "\n"+Rule+"\nDone\n"+Rule+"\n", out.String())
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	tbl := NewPrinter(&out).NewTable()
	tbl.AppendHeader(table.Row{"Field", "Value"})
	tbl.AppendRow(table.Row{"Title", "Example Domain"})
	tbl.Render()

	require.Contains(t, out.String(), "Example Domain")
	require.Contains(t, out.String(), "╭")
}
