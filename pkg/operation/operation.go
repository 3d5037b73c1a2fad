// Package operation turns config entries into executable units of work.
package operation

import (
	"bytes"
	"context"
	"fmt"

	"github.com/walteh/tagsync/pkg/config"
	"github.com/walteh/tagsync/pkg/status"
	syncpkg "github.com/walteh/tagsync/pkg/sync"
	"github.com/walteh/tagsync/pkg/tagfile"
	"github.com/walteh/tagsync/pkg/vfs"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work built from one config entry
type Operation interface {
	// Name identifies the operation in logs and errors
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators operations need
type Options struct {
	// Config is the loaded tagsync configuration
	Config *config.Config
	// FS is the filesystem all reads and writes go through
	FS *vfs.FS
	// Tracker records per-file outcomes
	Tracker *status.Tracker
}

// 🏭 BuildAll creates one operation per config entry, inserts first
func BuildAll(opts Options) ([]Operation, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.FS == nil {
		return nil, errors.New("filesystem is required")
	}
	if opts.Tracker == nil {
		return nil, errors.New("tracker is required")
	}

	ops := make([]Operation, 0, len(opts.Config.Inserts)+len(opts.Config.Syncs))
	for _, ins := range opts.Config.Inserts {
		ops = append(ops, &insertOperation{
			fs:      opts.FS,
			tracker: opts.Tracker,
			spec:    ins,
		})
	}
	for _, sc := range opts.Config.Syncs {
		ops = append(ops, &syncOperation{
			fs:      opts.FS,
			tracker: opts.Tracker,
			cfg:     opts.Config,
			spec:    sc,
		})
	}
	return ops, nil
}

// ✏️ insertOperation substitutes a tag region in one file
type insertOperation struct {
	fs      *vfs.FS
	tracker *status.Tracker
	spec    config.Insert
}

func (op *insertOperation) Name() string {
	return fmt.Sprintf("insert %s into %s", op.spec.Tag, op.spec.File)
}

func (op *insertOperation) Execute(ctx context.Context) error {
	content := op.spec.Content
	if op.spec.ContentFile != "" {
		text, err := op.fs.ReadText(op.spec.ContentFile)
		if err != nil {
			return errors.Errorf("reading content file %s: %w", op.spec.ContentFile, err)
		}
		content = text
	}

	before, err := op.fs.ReadBytes(op.spec.File)
	if err != nil {
		return err
	}

	ops := tagfile.New(op.fs, op.spec.File)
	if op.spec.CreateTags {
		err = ops.InsertOrCreateTags(ctx, content, op.spec.Tag, op.spec.TagPrefix)
	} else {
		err = ops.InsertBetween(ctx, content, op.spec.Tag)
	}
	if err != nil {
		op.tracker.Track(ctx, status.FileInfo{Path: op.spec.File, Status: status.StatusUnknown, Error: err})
		return err
	}

	after, err := op.fs.ReadBytes(op.spec.File)
	if err != nil {
		return err
	}

	outcome := status.StatusModified
	if bytes.Equal(before, after) {
		outcome = status.StatusUnchanged
	}
	op.tracker.Track(ctx, status.FileInfo{
		Path:     op.spec.File,
		Status:   outcome,
		Checksum: status.Checksum(after),
	})
	return nil
}

// 📂 syncOperation copies one file into its destination folder
type syncOperation struct {
	fs      *vfs.FS
	tracker *status.Tracker
	cfg     *config.Config
	spec    config.Sync
}

func (op *syncOperation) Name() string {
	return fmt.Sprintf("sync %s to %s", op.spec.Source, op.spec.Destination)
}

func (op *syncOperation) Execute(ctx context.Context) error {
	if op.cfg.ShouldIgnore(ctx, op.spec.Source) {
		op.tracker.Track(ctx, status.FileInfo{Path: op.spec.Source, Status: status.StatusUnchanged})
		return nil
	}

	syncer := syncpkg.New(op.fs)

	var dest string
	var outcome status.FileStatus
	var err error
	switch {
	case op.spec.PreserveRoot != "":
		dest, outcome, err = syncer.CopyOrWritePreservingSubPath(ctx, op.spec.Source, op.spec.PreserveRoot, op.spec.Destination)
	case op.spec.AlwaysWrite:
		dest, outcome, err = syncer.CopyOrWrite(ctx, op.spec.Source, op.spec.Destination)
	default:
		dest, outcome, err = syncer.CopyIfDifferent(ctx, op.spec.Source, op.spec.Destination, syncpkg.CopyIfDifferentOptions{
			RenameTo:   op.spec.RenameTo,
			RelativeTo: op.spec.RelativeTo,
		})
	}
	if err != nil {
		op.tracker.Track(ctx, status.FileInfo{Path: op.spec.Source, Status: status.StatusUnknown, Error: err})
		return err
	}

	data, err := op.fs.ReadBytes(dest)
	if err != nil {
		return err
	}
	op.tracker.Track(ctx, status.FileInfo{
		Path:     dest,
		Status:   outcome,
		Checksum: status.Checksum(data),
	})
	return nil
}
