package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slabtree/pkg/tree"
)

// scenarioTree builds the ten-node tree used across the printer tests and
// returns it with the ids by payload.
func scenarioTree(t *testing.T) (*tree.Tree[int], map[int]tree.NodeID) {
	t.Helper()

	tr := tree.NewWithRoot(0)
	root, ok := tr.RootMut()
	require.True(t, ok)

	ids := map[int]tree.NodeID{0: root.NodeID()}
	add := func(parent tree.NodeMut[int], v int) tree.NodeMut[int] {
		n := parent.Append(v)
		ids[v] = n.NodeID()
		return n
	}
	one := add(root, 1)
	five := add(root, 5)
	add(root, 9)
	two := add(one, 2)
	add(two, 3)
	add(two, 4)
	six := add(five, 6)
	add(six, 7)
	add(five, 8)
	return tr, ids
}

func render[T any](t *testing.T, tr *tree.Tree[T], opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(tr, &buf, opts).Print())
	return buf.String()
}

func TestPrinter_Text(t *testing.T) {
	tr, _ := scenarioTree(t)

	want := `0
├── 1
│   └── 2
│       ├── 3
│       └── 4
├── 5
│   ├── 6
│   │   └── 7
│   └── 8
└── 9
`
	if diff := cmp.Diff(want, render(t, tr, DefaultOptions())); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinter_TextSmall(t *testing.T) {
	tr := tree.NewWithRoot(0)
	root, _ := tr.RootMut()
	root.Append(1).Append(2)
	root.Append(3)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tr))
	require.Equal(t, "0\n├── 1\n│   └── 2\n└── 3\n", buf.String())
}

func TestPrinter_TextEmpty(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON, FormatYAML} {
		opts := DefaultOptions()
		opts.Format = f
		require.Empty(t, render(t, tree.New[int](), opts), string(f))
	}
}

func TestPrinter_TextASCII(t *testing.T) {
	tr := tree.NewWithRoot("a")
	root, _ := tr.RootMut()
	root.Append("b").Append("c")
	root.Append("d")

	opts := DefaultOptions()
	opts.ASCII = true
	require.Equal(t, "a\n|-- b\n|   `-- c\n`-- d\n", render(t, tr, opts))
}

func TestPrinter_TextIndentSize(t *testing.T) {
	tr := tree.NewWithRoot("a")
	root, _ := tr.RootMut()
	root.Append("b").Append("c")
	root.Append("d")

	opts := DefaultOptions()
	opts.IndentSize = 1
	require.Equal(t, "a\n├─ b\n│  └─ c\n└─ d\n", render(t, tr, opts))

	opts.IndentSize = 0
	require.Equal(t, "a\n├── b\n│   └── c\n└── d\n", render(t, tr, opts), "non-positive sizes fall back to the default")
}

func TestPrinter_TextMaxDepth(t *testing.T) {
	tr, _ := scenarioTree(t)

	tests := []struct {
		depth int
		want  string
	}{
		{depth: 1, want: "0\n"},
		{depth: 2, want: "0\n├── 1\n├── 5\n└── 9\n"},
		{depth: 3, want: "0\n├── 1\n│   └── 2\n├── 5\n│   ├── 6\n│   └── 8\n└── 9\n"},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.MaxDepth = tt.depth
		require.Equal(t, tt.want, render(t, tr, opts), "depth %d", tt.depth)
	}
}

func TestPrinter_TextColor(t *testing.T) {
	tr, _ := scenarioTree(t)

	opts := DefaultOptions()
	opts.Color = true
	out := render(t, tr, opts)

	require.Contains(t, out, "\x1b[")
	require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 10)

	plain := render(t, tr, DefaultOptions())
	require.NotContains(t, plain, "\x1b[")
}

func TestPrinter_PrintNode(t *testing.T) {
	tr, ids := scenarioTree(t)

	var buf bytes.Buffer
	p := New(tr, &buf, DefaultOptions())
	require.NoError(t, p.PrintNode(ids[5]))
	require.Equal(t, "5\n├── 6\n│   └── 7\n└── 8\n", buf.String())

	_, err := tr.Remove(ids[9], tree.DropChildren)
	require.NoError(t, err)
	err = p.PrintNode(ids[9])
	require.ErrorIs(t, err, tree.ErrNodeNotFound)
}

func TestPrinter_PrintDoesNotChangeTree(t *testing.T) {
	tr, ids := scenarioTree(t)
	before := tr.Stats()

	for _, f := range []Format{FormatText, FormatJSON, FormatYAML} {
		opts := DefaultOptions()
		opts.Format = f
		render(t, tr, opts)
	}

	require.Equal(t, before, tr.Stats())
	require.NoError(t, tr.Validate())
	require.True(t, tr.Contains(ids[7]))
}

func expectedDoc() *docNode[int] {
	leaf := func(v int) *docNode[int] { return &docNode[int]{Value: v} }
	return &docNode[int]{Value: 0, Children: []*docNode[int]{
		{Value: 1, Children: []*docNode[int]{
			{Value: 2, Children: []*docNode[int]{leaf(3), leaf(4)}},
		}},
		{Value: 5, Children: []*docNode[int]{
			{Value: 6, Children: []*docNode[int]{leaf(7)}},
			leaf(8),
		}},
		leaf(9),
	}}
}

func TestPrinter_JSON(t *testing.T) {
	tr, _ := scenarioTree(t)

	opts := DefaultOptions()
	opts.Format = FormatJSON
	out := render(t, tr, opts)

	var got docNode[int]
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff(expectedDoc(), &got); diff != "" {
		t.Errorf("json document mismatch (-want +got):\n%s", diff)
	}
	require.True(t, strings.HasPrefix(out, "{\n  \"value\": 0,"), out)
}

func TestPrinter_JSONMaxDepth(t *testing.T) {
	tr, _ := scenarioTree(t)

	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.MaxDepth = 2
	out := render(t, tr, opts)

	var got docNode[int]
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := &docNode[int]{Value: 0, Children: []*docNode[int]{{Value: 1}, {Value: 5}, {Value: 9}}}
	require.Empty(t, cmp.Diff(want, &got))
}

func TestPrinter_YAML(t *testing.T) {
	tr, _ := scenarioTree(t)

	opts := DefaultOptions()
	opts.Format = FormatYAML
	out := render(t, tr, opts)

	var got docNode[int]
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff(expectedDoc(), &got); diff != "" {
		t.Errorf("yaml document mismatch (-want +got):\n%s", diff)
	}
	require.True(t, strings.HasPrefix(out, "value: 0\n"), out)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		require.Equal(t, Format(s), f)
	}

	_, err := ParseFormat("reg")
	require.Error(t, err)
}

func TestPrinter_DeepTree(t *testing.T) {
	const depth = 1000

	tr := tree.NewWithRoot(0)
	n, _ := tr.RootMut()
	for v := 1; v < depth; v++ {
		n = n.Append(v)
	}

	out := render(t, tr, DefaultOptions())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, depth)
	require.True(t, strings.HasSuffix(lines[depth-1], "└── 999"))
}
