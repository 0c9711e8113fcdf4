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
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Skipped-file lines use the debug printer; every processed file gets a
	// visible outcome line
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about file changes
type UserLogger struct {
	log       zerolog.Logger // for debug/error logging
	formatter FileFormatter
}

// 🎨 FileChangeType represents the outcome of processing one file
type FileChangeType int

const (
	FileChanged FileChangeType = iota
	FileSkipped
	FileError
)

// 🖼️ FileChange represents the outcome of processing one file
type FileChange struct {
	Type         FileChangeType
	Path         string
	Replacements int
	Error        error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log:       *zerolog.Ctx(ctx),
		formatter: NewDefaultFileFormatter(),
	}
}

// 📝 LogFileChange logs a file outcome with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	msg := u.formatter.FormatFileChange(change.Path, change.Type == FileChanged, change.Replacements, change.Error)

	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileChanged:
		printer = &pterm.Success
	case FileSkipped:
		printer = &pterm.Debug
	case FileError:
		printer = &pterm.Error
	}

	printer.Println(msg)

	if change.Error != nil {
		u.log.Error().Err(change.Error).Str("path", change.Path).Msg("file processing failed")
		return
	}
	u.log.Info().
		Str("path", change.Path).
		Bool("changed", change.Type == FileChanged).
		Int("replacements", change.Replacements).
		Msg("file processed")
}

// 📝 Header logs the start-of-run banner
func (u *UserLogger) Header(msg string) {
	name := color.New(color.Bold, color.FgMagenta).Sprint("themefix")
	pterm.Println(fmt.Sprintf("\n🎨 %s %s\n", name, color.New(color.Faint).Sprint("• "+msg)))
	u.log.Info().Msg(msg)
}

// 📝 Done logs the end-of-run banner
func (u *UserLogger) Done(msg string) {
	pterm.Println(fmt.Sprintf("\n✨ %s", color.New(color.FgGreen).Sprint(msg)))
	u.log.Info().Msg(msg)
}

// 📝 Info logs an informational message
func (u *UserLogger) Info(msg string) {
	pterm.Info.Println(msg)
	u.log.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (u *UserLogger) Warning(msg string) {
	pterm.Warning.Println(msg)
	u.log.Warn().Msg(msg)
}

// 📊 LogPhase logs the start of a processing phase
func (u *UserLogger) LogPhase(name string, files int) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(fmt.Sprintf("%s (%d files)", name, files))
	u.log.Info().Str("phase", name).Int("files", files).Msg("phase started")
}
