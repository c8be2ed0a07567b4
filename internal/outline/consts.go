package outline

const (
	// CommentPrefix marks a comment line.
	CommentPrefix = "#"

	// Tab indents one level regardless of IndentWidth.
	Tab = '\t'

	// Space indents one column.
	Space = ' '

	// DefaultIndentWidth is the number of spaces per level.
	DefaultIndentWidth = 2

	// ScannerInitialBufferSize is the starting line buffer size.
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxLineSize bounds a single line.
	ScannerMaxLineSize = 1024 * 1024
)
