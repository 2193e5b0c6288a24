package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReturnsOutput(t *testing.T) {
	orig := execGit
	t.Cleanup(func() { execGit = orig })

	var gotArgs []string
	execGit = func(_ context.Context, args ...string) ([]byte, error) {
		gotArgs = args
		return []byte("# branch.head main\n"), nil
	}

	out, err := Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "# branch.head main\n", out)
	assert.Equal(t, []string{"status", "--porcelain=2", "--branch"}, gotArgs)
}

func TestStatusNotARepository(t *testing.T) {
	orig := execGit
	t.Cleanup(func() { execGit = orig })

	execGit = func(_ context.Context, _ ...string) ([]byte, error) {
		return nil, errors.New("exit status 128")
	}

	_, err := Status(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
