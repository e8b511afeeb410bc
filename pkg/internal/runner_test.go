package internal

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	var stdout bytes.Buffer
	r := ExecRunner{Stdout: &stdout}

	code, err := r.Run(context.Background(), "sh", []string{"-c", "echo hello"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())

	code, err = r.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	_, err = r.Run(context.Background(), "definitely-not-a-real-command-xyz", nil)
	assert.Error(t, err)
}
