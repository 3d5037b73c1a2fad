// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of an operation on a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusNew                  // File didn't exist at the destination, fresh copy
	StatusModified             // File existed but content differed, overwritten
	StatusUnchanged            // File existed with identical content, no write
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the recorded outcome for a file
type FileInfo struct {
	Path     string     // Path the operation targeted
	Status   FileStatus // Outcome
	Checksum string     // Content hash of the written/seen bytes
	Error    error      // Any error associated with this file
}

// 🔧 Tracker records per-file outcomes for a run
type Tracker struct {
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo
}

// 🏭 NewTracker creates a new outcome tracker
func NewTracker(formatter FileFormatter) *Tracker {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Tracker{
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// 🔍 Checksum generates a SHA-256 hash of content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Track records an outcome and logs a formatted line for it
func (t *Tracker) Track(ctx context.Context, info FileInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.files[info.Path] = info

	msg := t.formatter.FormatFileOperation(info.Path, info.Status)
	if info.Error != nil {
		msg = t.formatter.FormatError(info.Error)
	}
	event := zerolog.Ctx(ctx).Info().
		Str("path", info.Path).
		Str("status", info.Status.String())
	if info.Checksum != "" {
		event = event.Str("checksum", info.Checksum)
	}
	event.Msg(msg)
}

// GetFileInfo returns the recorded outcome for a path
func (t *Tracker) GetFileInfo(path string) (FileInfo, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	info, ok := t.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns all recorded outcomes
func (t *Tracker) ListFiles() []FileInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	files := make([]FileInfo, 0, len(t.files))
	for _, info := range t.files {
		files = append(files, info)
	}
	return files
}

// Counts returns how many files ended in each status
func (t *Tracker) Counts() map[FileStatus]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := make(map[FileStatus]int)
	for _, info := range t.files {
		counts[info.Status]++
	}
	return counts
}
