package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corp2world/c2w-go/message"
)

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"only-topic"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "usage: c2w-send")
}

func TestRun_DevTransport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-dev", dir, "Backup", "done", "p_host=db-1"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Message sent with result: OK")
	assert.Contains(t, out, "Message ID: 1")
	assert.NotContains(t, out, "Waiting for response")
	assert.FileExists(t, filepath.Join(dir, "1_backup.json"))
}

func TestRun_DialogWaitsForResponse(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	responses := []message.Response{{MessageID: 1, RespondedOption: "yes", UserID: "alice", Timestamp: time.Now().UnixMilli()}}
	data, err := json.Marshal(responses)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.responses.json"), data, 0o644))

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"-dev", dir, "-wait", "0s", "Deploy", "ok?", "d_yes", "d_no"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Response: yes from alice")
}

func TestRun_DialogWithoutResponse(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-dev", t.TempDir(), "-wait", "0s", "Deploy", "ok?", "d_yes"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No response, aborting.")
}
