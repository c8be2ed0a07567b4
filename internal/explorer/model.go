// Package explorer implements an interactive terminal browser for string
// trees. The model never mutates the tree; every frame reads it through
// shared borrows keyed by node id.
package explorer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/slabtree/internal/logger"
	"github.com/joshuapare/slabtree/pkg/tree"
)

// chromeHeight is the number of lines taken by the header and status bar.
const chromeHeight = 3

// Options configures a Model.
type Options struct {
	// Title is shown in the header, usually the file name.
	Title string
	// Copy receives the selected node's path. Defaults to the system clipboard.
	Copy func(string) error
	// Keys overrides the default key bindings when non-nil.
	Keys *KeyMap
}

// row is one visible line of the flattened tree.
type row struct {
	id       tree.NodeID
	depth    int
	label    string
	branch   bool
	expanded bool
}

// Model is the bubbletea model for the explorer.
type Model struct {
	tree  *tree.Tree[string]
	title string
	keys  KeyMap
	copy  func(string) error

	expanded map[tree.NodeID]bool
	rows     []row
	cursor   int
	offset   int
	width    int
	height   int

	showHelp bool
	status   string
	failed   bool
}

// New creates an explorer over t with the root expanded.
func New(t *tree.Tree[string], opts Options) *Model {
	m := &Model{
		tree:     t,
		title:    opts.Title,
		keys:     DefaultKeyMap(),
		copy:     opts.Copy,
		expanded: make(map[tree.NodeID]bool),
	}
	if opts.Keys != nil {
		m.keys = *opts.Keys
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if m.title == "" {
		m.title = "slabtree"
	}
	if id, ok := t.RootID(); ok {
		m.expanded[id] = true
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Esc):
			m.showHelp = false
		}
		return nil
	}

	m.status = ""
	m.failed = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.MoveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.MoveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.MoveTo(m.cursor - m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.MoveTo(m.cursor + m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.MoveTo(0)
	case key.Matches(msg, m.keys.End):
		m.MoveTo(len(m.rows) - 1)
	case key.Matches(msg, m.keys.Right):
		m.Expand()
	case key.Matches(msg, m.keys.Left):
		m.Collapse()
	case key.Matches(msg, m.keys.Enter):
		m.Toggle()
	case key.Matches(msg, m.keys.GoToParent):
		m.GoToParent()
	case key.Matches(msg, m.keys.ExpandAll):
		m.ExpandAllChildren()
	case key.Matches(msg, m.keys.CollapseAll):
		m.CollapseAll()
	case key.Matches(msg, m.keys.Copy):
		m.CopyCurrentPath()
	}
	return nil
}

// MoveTo places the cursor on row pos, clamped to the visible rows.
func (m *Model) MoveTo(pos int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = max(0, min(pos, len(m.rows)-1))
	m.ensureVisible()
}

// Cursor returns the cursor row.
func (m *Model) Cursor() int { return m.cursor }

// Current returns the node under the cursor.
func (m *Model) Current() (tree.NodeRef[string], bool) {
	if len(m.rows) == 0 {
		return tree.NodeRef[string]{}, false
	}
	n, err := m.tree.Get(m.rows[m.cursor].id)
	if err != nil {
		return tree.NodeRef[string]{}, false
	}
	return n, true
}

// Labels returns the visible rows' labels from top to bottom.
func (m *Model) Labels() []string {
	labels := make([]string, len(m.rows))
	for i, r := range m.rows {
		labels[i] = r.label
	}
	return labels
}

// Expand opens the current branch, or steps into its first child when it is
// already open.
func (m *Model) Expand() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	switch {
	case !r.branch:
	case !r.expanded:
		m.expanded[r.id] = true
		m.rebuild()
	default:
		m.MoveTo(m.cursor + 1)
	}
}

// Collapse closes the current branch, or moves to the parent when the
// current row is a leaf or already closed.
func (m *Model) Collapse() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	if r.expanded {
		delete(m.expanded, r.id)
		m.rebuild()
		return
	}
	m.GoToParent()
}

// Toggle flips the current branch between open and closed.
func (m *Model) Toggle() {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]
	if !r.branch {
		return
	}
	if r.expanded {
		delete(m.expanded, r.id)
	} else {
		m.expanded[r.id] = true
	}
	m.rebuild()
}

// GoToParent moves the cursor to the current node's parent row.
func (m *Model) GoToParent() {
	n, ok := m.Current()
	if !ok {
		return
	}
	parent, ok := n.Parent()
	if !ok {
		return
	}
	if i := m.indexOf(parent.NodeID()); i >= 0 {
		m.MoveTo(i)
	}
}

// ExpandAllChildren opens every branch below the current node.
func (m *Model) ExpandAllChildren() {
	n, ok := m.Current()
	if !ok {
		return
	}
	for d := range n.PreOrder().All() {
		if d.HasChildren() {
			m.expanded[d.NodeID()] = true
		}
	}
	m.rebuild()
	logger.Debug("explorer expanded subtree", "node", n.NodeID(), "rows", len(m.rows))
}

// CollapseAll closes every branch except the root and returns to the top.
func (m *Model) CollapseAll() {
	clear(m.expanded)
	if id, ok := m.tree.RootID(); ok {
		m.expanded[id] = true
	}
	m.rebuild()
	m.MoveTo(0)
}

// Path returns the labels from the root down to the current node.
func (m *Model) Path() string {
	n, ok := m.Current()
	if !ok {
		return ""
	}
	parts := []string{n.Data()}
	for a := range n.Ancestors().All() {
		parts = append(parts, a.Data())
	}
	slices.Reverse(parts)
	return strings.Join(parts, pathSeparator)
}

// CopyCurrentPath hands the current node's path to the copy function.
func (m *Model) CopyCurrentPath() {
	path := m.Path()
	if path == "" {
		return
	}
	if err := m.copy(path); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.failed = true
		logger.Warn("explorer copy failed", "error", err)
		return
	}
	m.status = "copied: " + path
}

// rebuild flattens the expanded part of the tree into rows and keeps the
// cursor on the same node when it is still visible.
func (m *Model) rebuild() {
	var selected tree.NodeID
	if len(m.rows) > 0 {
		selected = m.rows[m.cursor].id
	}

	m.rows = m.rows[:0]
	root, ok := m.tree.Root()
	if !ok {
		m.cursor, m.offset = 0, 0
		return
	}

	type frame struct {
		children *tree.Children[string]
		depth    int
	}
	var stack []frame

	visit := func(n tree.NodeRef[string], depth int) {
		open := n.HasChildren() && m.expanded[n.NodeID()]
		m.rows = append(m.rows, row{
			id:       n.NodeID(),
			depth:    depth,
			label:    n.Data(),
			branch:   n.HasChildren(),
			expanded: open,
		})
		if open {
			stack = append(stack, frame{children: n.Children(), depth: depth + 1})
		}
	}

	visit(root, 0)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		n, ok := top.children.Next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		visit(n, top.depth)
	}

	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
	if !selected.IsZero() {
		if i := m.indexOf(selected); i >= 0 {
			m.cursor = i
		}
	}
	m.ensureVisible()
}

func (m *Model) indexOf(id tree.NodeID) int {
	return slices.IndexFunc(m.rows, func(r row) bool { return r.id == id })
}

// pageSize is the number of rows that fit between header and status bar.
func (m *Model) pageSize() int {
	if m.height <= 0 {
		return max(len(m.rows), 1)
	}
	return max(m.height-chromeHeight, 1)
}

func (m *Model) ensureVisible() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(0, min(m.offset, max(len(m.rows)-page, 0)))
}
