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

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file changes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange logs a file outcome with appropriate prefix and formatting
func (u *UserLogger) LogFileChange(info FileInfo) {
	var action string
	var printer *pterm.PrefixPrinter
	switch {
	case info.Error != nil:
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"})
	case info.Status == StatusNew:
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case info.Status == StatusModified:
		action = "Overwrote"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
	case info.Status == StatusUnchanged:
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭"})
	default:
		action = "Touched"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "•"})
	}

	if info.Error != nil {
		printer.Printfln("%s %s: %v", action, info.Path, info.Error)
		u.log.Debug().Str("path", info.Path).Err(info.Error).Msg("file operation failed")
		return
	}

	printer.Printfln("%s %s", action, info.Path)
	u.log.Debug().Str("path", info.Path).Str("status", info.Status.String()).Msg("file change")
}

// ✅ LogValidation logs a validation result
func (u *UserLogger) LogValidation(ok bool, message string, err error) {
	if ok {
		pterm.Success.Println(message)
		return
	}
	if err != nil {
		pterm.Error.Printfln("%s: %v", message, err)
		u.log.Debug().Err(err).Msg(message)
		return
	}
	pterm.Error.Println(message)
}
