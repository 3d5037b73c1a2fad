package opts

import (
	"github.com/walteh/tagsync/pkg/status"
	"github.com/walteh/tagsync/pkg/vfs"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	FS         *vfs.FS
	Tracker    *status.Tracker
	UserLogger *status.UserLogger
}
