package maze

import (
	"errors"
	"fmt"

	astar "github.com/pdrpinto/astar-maze"
)

// ErrFormat matches every maze format error via errors.Is.
var ErrFormat = errors.New("maze format error")

var (
	ErrEmpty            = formatKind("empty maze")
	ErrInvalidCharacter = formatKind("invalid character")
	ErrRaggedRows       = formatKind("non-rectangular rows")
	ErrDegenerate       = formatKind("degenerate maze")
	ErrOpenBoundary     = formatKind("open cell on boundary")
	ErrStartCount       = formatKind("start count")
	ErrExitCount        = formatKind("exit count")
)

var (
	// ErrNoPath is the unreachable outcome of FindPath.
	ErrNoPath = errors.New("maze not solvable")
	// ErrInvalidEndpoint is returned when FindPath is given a start or exit
	// outside the grid or on a wall.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// kindError is a format sentinel that also matches ErrFormat.
type kindError struct{ msg string }

func formatKind(msg string) error { return &kindError{msg: msg} }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Is(target error) bool { return target == ErrFormat }

// FormatError describes why maze text was rejected. Row and Col are -1 when
// the failure is not tied to a cell; Count is set for start/exit violations.
type FormatError struct {
	Kind  error
	Row   int
	Col   int
	Count int
	Msg   string
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Kind }

func cellErrorf(kind error, row, col int, format string, args ...any) error {
	return &FormatError{Kind: kind, Row: row, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func rowErrorf(kind error, row int, format string, args ...any) error {
	return &FormatError{Kind: kind, Row: row, Col: -1, Msg: fmt.Sprintf(format, args...)}
}

func countError(kind error, symbol rune, count int) error {
	msg := fmt.Sprintf("expected exactly one %q, found %d", symbol, count)
	if count == 0 {
		msg = fmt.Sprintf("missing %q", symbol)
	}
	return &FormatError{Kind: kind, Row: -1, Col: -1, Count: count, Msg: msg}
}

// NoPathError reports that the exit cannot be reached from the start.
type NoPathError struct {
	Start    Coordinate
	Exit     Coordinate
	Expanded int
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("%s: no route from %s to %s (%d cells explored)", ErrNoPath, e.Start, e.Exit, e.Expanded)
}

// Is lets the error match both this package's and the engine's sentinel.
func (e *NoPathError) Is(target error) bool {
	return target == ErrNoPath || target == astar.ErrNoPath
}
