package cli

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const (
	ExitSuccess           = 0
	ExitNoPath            = 1
	ExitInvalidInvocation = 2
	ExitResourceError     = 3
	ExitFormatError       = 4
	ExitSearchExhausted   = 5
	ExitInternalError     = 6
)

// Invocation is the parsed command line.
type Invocation struct {
	MazePath string
	// MaxMoves rejects solutions longer than this; 0 means unlimited.
	MaxMoves int
	// Budgets is a retry ladder of move limits, tried in order. When set it
	// replaces MaxMoves.
	Budgets []int
	// Workers overrides the configured worker count when positive.
	Workers int
	Quiet   bool
	// EnvFile is an explicit .env path; empty loads ./.env if present.
	EnvFile string
}

// MoveBudgets returns the limits to try in order. A nil result means one
// attempt with no limit.
func (inv Invocation) MoveBudgets() []int {
	if len(inv.Budgets) > 0 {
		return inv.Budgets
	}
	if inv.MaxMoves > 0 {
		return []int{inv.MaxMoves}
	}
	return nil
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses flags followed by exactly one maze file path.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("mazesolver", flag.ContinueOnError)
	var usage bytes.Buffer
	fs.SetOutput(&usage)
	fs.Usage = func() {
		fmt.Fprintln(&usage, "usage: mazesolver [flags] <maze.txt>")
		fs.PrintDefaults()
	}

	var inv Invocation
	var budgets string
	fs.IntVar(&inv.MaxMoves, "max-moves", 0, "Reject solutions longer than this many moves (0 = unlimited).")
	fs.StringVar(&budgets, "budgets", "", "Comma-separated move limits to try in order, e.g. 38,150,200.")
	fs.IntVar(&inv.Workers, "workers", 0, "Worker goroutines per search (0 = MAZE_WORKERS).")
	fs.BoolVar(&inv.Quiet, "quiet", false, "Print only the solved maze.")
	fs.StringVar(&inv.EnvFile, "env", "", "Path to a .env configuration file.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Invocation{}, &InvocationError{ExitCode: ExitSuccess, Message: strings.TrimRight(usage.String(), "\n")}
		}
		return Invocation{}, invalidInvocationf("%v", err)
	}

	switch fs.NArg() {
	case 0:
		return Invocation{}, invalidInvocationf("missing maze file argument")
	case 1:
		inv.MazePath = fs.Arg(0)
	default:
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args()[1:], " "))
	}

	if inv.MaxMoves < 0 {
		return Invocation{}, invalidInvocationf("-max-moves must not be negative (got %d)", inv.MaxMoves)
	}
	if inv.Workers < 0 {
		return Invocation{}, invalidInvocationf("-workers must not be negative (got %d)", inv.Workers)
	}

	parsed, err := parseBudgets(budgets)
	if err != nil {
		return Invocation{}, err
	}
	inv.Budgets = parsed
	return inv, nil
}

func parseBudgets(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, invalidInvocationf("-budgets must be positive integers, got %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
