package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/internal/config"
	"github.com/pdrpinto/astar-maze/internal/logging"
	"github.com/pdrpinto/astar-maze/maze"
)

// ErrMoveBudget is returned when a path exists but is longer than every
// budget that was tried.
var ErrMoveBudget = errors.New("no solution within move budget")

// Result is the outcome of one invocation.
type Result struct {
	RunID    uuid.UUID
	ExitCode int
	Path     maze.Path
	// Budget is the move limit the path satisfied, 0 when unlimited.
	Budget int
}

// ExitCodeFor maps an error from Execute's pipeline to a process exit status.
func ExitCodeFor(err error) int {
	var invErr *InvocationError
	var resErr *ResourceError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &invErr):
		return invErr.ExitCode
	case errors.As(err, &resErr):
		return ExitResourceError
	case errors.Is(err, maze.ErrFormat):
		return ExitFormatError
	case errors.Is(err, maze.ErrNoPath), errors.Is(err, ErrMoveBudget):
		return ExitNoPath
	case errors.Is(err, astar.ErrExpansionLimit):
		return ExitSearchExhausted
	default:
		return ExitInternalError
	}
}

// LoadConfig loads configuration for inv, honoring -env.
func LoadConfig(inv Invocation) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if inv.EnvFile != "" {
		cfg, err = config.LoadFile(inv.EnvFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf("config: %v", err)}
	}
	return cfg, nil
}

// Execute reads, parses and solves the maze named by inv, writing the report
// to out. The returned error, if any, is also reflected in Result.ExitCode.
func Execute(ctx context.Context, inv Invocation, cfg config.Config, out io.Writer, logger *logging.Logger) (Result, error) {
	result := Result{RunID: uuid.New()}
	fail := func(err error) (Result, error) {
		result.ExitCode = ExitCodeFor(err)
		logger.Debugf("run %s failed with exit code %d", result.RunID, result.ExitCode)
		return result, err
	}

	logger.Infof("run %s: solving %s", result.RunID, inv.MazePath)

	text, err := ReadMazeFile(inv.MazePath)
	if err != nil {
		return fail(err)
	}

	grid, err := maze.Parse(text)
	if err != nil {
		return fail(fmt.Errorf("parse %s: %w", inv.MazePath, err))
	}
	logger.Debugf("run %s: %dx%d maze, start %s, exit %s",
		result.RunID, grid.Height(), grid.Width(), grid.Start(), grid.Exit())

	workers := cfg.Workers
	if inv.Workers > 0 {
		workers = inv.Workers
	}
	opts := []astar.Option{astar.WithWorkers(workers)}
	if cfg.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(cfg.MaxExpansions))
	}

	path, err := maze.FindPath(ctx, grid, grid.Start(), grid.Exit(), opts...)
	if err != nil {
		if !inv.Quiet && errors.Is(err, maze.ErrNoPath) {
			fmt.Fprintln(out, "No solution found.")
		}
		return fail(err)
	}
	logger.Debugf("run %s: shortest path has %d moves", result.RunID, path.Moves())

	rendered := grid.Render(path, cfg.PathGlyph)
	budgets := inv.MoveBudgets()
	if len(budgets) == 0 {
		if !inv.Quiet {
			fmt.Fprintf(out, "Found solution (%d moves):\n", path.Moves())
		}
		fmt.Fprintln(out, rendered)
		result.Path = path
		return result, nil
	}

	for _, budget := range budgets {
		if path.Moves() > budget {
			if !inv.Quiet {
				fmt.Fprintf(out, "No solution found with <= %d moves.\n", budget)
			}
			continue
		}
		if !inv.Quiet {
			fmt.Fprintf(out, "Found solution with <= %d (%d moves):\n", budget, path.Moves())
		}
		fmt.Fprintln(out, rendered)
		result.Path = path
		result.Budget = budget
		return result, nil
	}
	return fail(fmt.Errorf("%w: shortest path needs %d moves", ErrMoveBudget, path.Moves()))
}
