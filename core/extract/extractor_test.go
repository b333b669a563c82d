package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core/markup"
)

func TestExtract_Fragment(t *testing.T) {
	root, err := New().Extract("<p>Hello</p><script>alert(1)</script>")
	require.NoError(t, err)

	assert.Equal(t, "body", root.TagName())
	assert.Equal(t, "Hello", root.TextContent())
}

func TestExtract_RemovesNoiseKeepsCheckboxes(t *testing.T) {
	raw := `<html><head><title>T</title></head><body>
<ul><li><input type="checkbox" checked> task</li></ul>
<input type="text" value="x"><img src="a.png"><style>p{}</style>
</body></html>`

	root, err := New().Extract(raw)
	require.NoError(t, err)

	var inputs []markup.Node
	var walk func(n markup.Node)
	walk = func(n markup.Node) {
		if n.TagName() == "input" || n.TagName() == "img" || n.TagName() == "style" {
			inputs = append(inputs, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	require.Len(t, inputs, 1)
	assert.Equal(t, markup.KindCheckbox, markup.KindOf(inputs[0]))
	assert.Equal(t, "task", root.TextContent())
}

func TestExtract_MalformedIsLenient(t *testing.T) {
	root, err := New().Extract("<p>unclosed <b>bold")
	require.NoError(t, err)
	assert.Equal(t, "unclosed bold", root.TextContent())
}
