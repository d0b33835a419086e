package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	astar "github.com/pdrpinto/astar-maze"
	"github.com/pdrpinto/astar-maze/internal/config"
	"github.com/pdrpinto/astar-maze/internal/logging"
	"github.com/pdrpinto/astar-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridor = "######E#\n" +
	"#      #\n" +
	"# #### #\n" +
	"# #### #\n" +
	"#      #\n" +
	"######^#\n"

const walledOff = "######E#\n" +
	"# #    #\n" +
	"# #### #\n" +
	"# ######\n" +
	"#      #\n" +
	"######^#\n"

func writeMaze(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig() config.Config {
	return config.Config{Workers: 2, PathGlyph: '█'}
}

func execute(t *testing.T, inv Invocation) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	result, err := Execute(context.Background(), inv, testConfig(), &out, logging.Discard())
	return result, out.String(), err
}

func TestExecute(t *testing.T) {
	t.Run("solves and renders the path", func(t *testing.T) {
		result, out, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", corridor)})
		require.NoError(t, err)

		assert.Equal(t, ExitSuccess, result.ExitCode)
		assert.Equal(t, 5, result.Path.Moves())
		assert.Equal(t, 0, result.Budget)
		assert.NotEqual(t, uuid.Nil, result.RunID)

		want := "Found solution (5 moves):\n" +
			"######█#\n" +
			"#     █#\n" +
			"# ####█#\n" +
			"# ####█#\n" +
			"#     █#\n" +
			"######█#\n"
		assert.Equal(t, want, out)
	})

	t.Run("quiet prints only the maze", func(t *testing.T) {
		_, out, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", corridor), Quiet: true})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "######█#\n"))
	})

	t.Run("budget ladder", func(t *testing.T) {
		result, out, err := execute(t, Invocation{
			MazePath: writeMaze(t, "maze.txt", corridor),
			Budgets:  []int{2, 4, 6, 8},
		})
		require.NoError(t, err)

		assert.Equal(t, 6, result.Budget)
		assert.True(t, strings.HasPrefix(out, "No solution found with <= 2 moves.\n"+
			"No solution found with <= 4 moves.\n"+
			"Found solution with <= 6 (5 moves):\n######█#\n"), out)
	})

	t.Run("every budget too small", func(t *testing.T) {
		result, out, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", corridor), MaxMoves: 4})
		assert.ErrorIs(t, err, ErrMoveBudget)
		assert.Equal(t, ExitNoPath, result.ExitCode)
		assert.Equal(t, "No solution found with <= 4 moves.\n", out)
	})

	t.Run("unreachable exit", func(t *testing.T) {
		result, out, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", walledOff)})
		assert.ErrorIs(t, err, maze.ErrNoPath)
		assert.Equal(t, ExitNoPath, result.ExitCode)
		assert.Equal(t, "No solution found.\n", out)
		assert.Nil(t, result.Path)
	})

	t.Run("format error", func(t *testing.T) {
		result, _, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", "#^ #\n#E##\n")})
		assert.ErrorIs(t, err, maze.ErrOpenBoundary)
		assert.Equal(t, ExitFormatError, result.ExitCode)
	})

	t.Run("empty file is a format error", func(t *testing.T) {
		result, _, err := execute(t, Invocation{MazePath: writeMaze(t, "maze.txt", "")})
		assert.ErrorIs(t, err, maze.ErrEmpty)
		assert.Equal(t, ExitFormatError, result.ExitCode)
	})

	t.Run("missing file is a resource error", func(t *testing.T) {
		result, _, err := execute(t, Invocation{MazePath: filepath.Join(t.TempDir(), "nope.txt")})
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.Equal(t, ExitResourceError, result.ExitCode)
	})

	t.Run("expansion cap from config", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxExpansions = 1
		var out bytes.Buffer
		result, err := Execute(context.Background(), Invocation{MazePath: writeMaze(t, "maze.txt", corridor)}, cfg, &out, logging.Discard())
		assert.ErrorIs(t, err, astar.ErrExpansionLimit)
		assert.Equal(t, ExitSearchExhausted, result.ExitCode)
	})

	t.Run("canceled context is internal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		result, err := Execute(ctx, Invocation{MazePath: writeMaze(t, "maze.txt", corridor)}, testConfig(), &out, logging.Discard())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, ExitInternalError, result.ExitCode)
	})

	t.Run("logs the run", func(t *testing.T) {
		var logs, out bytes.Buffer
		logger, err := logging.New("MAZE", "", &logs)
		require.NoError(t, err)

		result, err := Execute(context.Background(), Invocation{MazePath: writeMaze(t, "maze.txt", corridor)},
			testConfig(), &out, logger.WithDebug(true))
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "[MAZE] [INFO] run "+result.RunID.String())
		assert.Contains(t, logs.String(), "shortest path has 5 moves")
	})
}

func TestReadMazeFile(t *testing.T) {
	t.Run("reads text", func(t *testing.T) {
		text, err := ReadMazeFile(writeMaze(t, "maze.txt", corridor))
		require.NoError(t, err)
		assert.Equal(t, corridor, text)
	})

	tests := []struct {
		name string
		path func(t *testing.T) string
		want error
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.txt") }, ErrFileNotFound},
		{"wrong extension", func(t *testing.T) string { return writeMaze(t, "maze.json", corridor) }, ErrNotTextFile},
		{"directory", func(t *testing.T) string {
			dir := filepath.Join(t.TempDir(), "dir.txt")
			require.NoError(t, os.Mkdir(dir, 0o755))
			return dir
		}, ErrIsDirectory},
		{"invalid utf-8", func(t *testing.T) string { return writeMaze(t, "maze.txt", "#\xff#") }, ErrEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMazeFile(tt.path(t))
			assert.ErrorIs(t, err, tt.want)

			var resErr *ResourceError
			assert.True(t, errors.As(err, &resErr))
			assert.Equal(t, ExitResourceError, ExitCodeFor(err))
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitFormatError, ExitCodeFor(&maze.FormatError{Kind: maze.ErrStartCount}))
	assert.Equal(t, ExitNoPath, ExitCodeFor(&maze.NoPathError{}))
	assert.Equal(t, ExitSearchExhausted, ExitCodeFor(astar.ErrExpansionLimit))
	assert.Equal(t, ExitInternalError, ExitCodeFor(errors.New("boom")))
}
