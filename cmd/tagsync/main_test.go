package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tagsync/pkg/vfs"
)

func TestRootCmd_ConfigFlagSelectsFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "alt.yaml")
	cfgYAML := "syncs:\n  - source: src/app.txt\n    destination: dest\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	ctx := log.Logger.WithContext(context.Background())
	opts := newRootOpts(ctx)
	opts.FS = vfs.NewMem()
	require.NoError(t, opts.FS.Write("src/app.txt", []byte("hello\n")))

	cmd := newRootCmd(opts)
	cmd.SetArgs([]string{"--config", cfgPath, "sync"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Equal(t, cfgPath, opts.ConfigFile)

	data, err := opts.FS.ReadBytes("dest/app.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), data)
}

func TestRootCmd_ConfigFlagDefault(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	opts := newRootOpts(ctx)
	opts.FS = vfs.NewMem()

	cmd := newRootCmd(opts)
	cmd.SetArgs([]string{"sync"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	// no .tagsync.yaml exists here, so sync fails, but the default path
	// must have reached the shared options
	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, ".tagsync.yaml", opts.ConfigFile)
	assert.Contains(t, err.Error(), ".tagsync.yaml")
}
