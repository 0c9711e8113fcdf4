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

package operation

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/themefix/pkg/status"
	"github.com/walteh/themefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Fix runs the full rewrite pass: component stylesheets, then the dark
// mode stylesheet, then the scoped app stylesheet rewrite. Per-file failures
// are reported and never abort the run.
func (op *operator) Fix(ctx context.Context) error {
	op.user.Header("Starting color replacement...")

	op.run(ctx, true)

	op.user.Done("Color replacement complete!")
	return nil
}

// 🔄 run executes the three phases in their fixed order and returns the
// per-file reports. With write disabled it is a pure dry run.
func (op *operator) run(ctx context.Context, write bool) []ChangeReport {
	logger := zerolog.Ctx(ctx)
	rules := op.config.ReplacementRules()
	scoped := op.config.ScopedReplacementRules()

	var reports []ChangeReport
	collect := func(report ChangeReport) {
		reports = append(reports, report)
		op.user.LogFileChange(toFileChange(report))
	}

	runner := newPhaseRunner(logger, op.user)
	runner.Run(ctx, []phase{
		{
			name: "component stylesheets",
			run: func(ctx context.Context) error {
				if op.config.ComponentsDir == "" {
					return nil
				}
				names, err := discoverStylesheets(filepath.Join(op.config.Root, op.config.ComponentsDir), op.config.Suffix)
				if err != nil {
					return errors.Errorf("discovering stylesheets: %w", err)
				}
				op.user.LogPhase("component stylesheets", len(names))
				for _, name := range names {
					collect(op.rewriteFile(ctx, filepath.Join(op.config.ComponentsDir, name), rules, write))
				}
				return nil
			},
		},
		{
			name: "dark mode stylesheet",
			run: func(ctx context.Context) error {
				return op.runSingleFile(ctx, op.config.DarkModeFile, func(rel string) ChangeReport {
					return op.rewriteFile(ctx, rel, rules, write)
				}, collect)
			},
		},
		{
			name: "app stylesheet",
			run: func(ctx context.Context) error {
				if len(scoped) == 0 {
					return nil
				}
				return op.runSingleFile(ctx, op.config.AppFile, func(rel string) ChangeReport {
					return op.rewriteScoped(ctx, rel, scoped, write)
				}, collect)
			},
		},
	})

	return reports
}

// 📄 runSingleFile processes one explicitly named file. A missing file is
// skipped silently; a stat failure is reported as that file's outcome.
func (op *operator) runSingleFile(ctx context.Context, rel string, process func(rel string) ChangeReport, collect func(ChangeReport)) error {
	if rel == "" {
		return nil
	}
	exists, err := fileExists(filepath.Join(op.config.Root, rel))
	if err != nil {
		collect(ChangeReport{Path: rel, Err: err})
		return nil
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", rel).Msg("file not present, skipping")
		return nil
	}
	collect(process(rel))
	return nil
}

// 📝 rewriteFile applies the general rule table to one file and writes the
// result back in place when the content changed.
func (op *operator) rewriteFile(ctx context.Context, rel string, rules []text.ReplacementRule, write bool) ChangeReport {
	abs := filepath.Join(op.config.Root, rel)

	content, err := os.ReadFile(abs)
	if err != nil {
		return ChangeReport{Path: rel, Err: errors.Errorf("reading file: %w", err)}
	}

	result, err := op.replacer.ReplaceText(ctx, filepath.ToSlash(rel), bytes.NewReader(content), rules)
	if err != nil {
		return ChangeReport{Path: rel, Err: errors.Errorf("applying rules: %w", err)}
	}

	return op.finishRewrite(rel, abs, result, write)
}

// 🎯 rewriteScoped applies the block-scoped rules to one file.
func (op *operator) rewriteScoped(ctx context.Context, rel string, rules []text.ScopedRule, write bool) ChangeReport {
	abs := filepath.Join(op.config.Root, rel)

	content, err := os.ReadFile(abs)
	if err != nil {
		return ChangeReport{Path: rel, Err: errors.Errorf("reading file: %w", err)}
	}

	result, err := op.replacer.ReplaceScoped(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return ChangeReport{Path: rel, Err: errors.Errorf("applying scoped rules: %w", err)}
	}

	return op.finishRewrite(rel, abs, result, write)
}

// 💾 finishRewrite persists a modified result and builds the report. The
// write only happens when the final text differs byte for byte from the
// original, so untouched files keep their modification time.
func (op *operator) finishRewrite(rel, abs string, result *text.ReplacementResult, write bool) ChangeReport {
	report := ChangeReport{
		Path:         rel,
		Changed:      result.WasModified,
		Replacements: result.ReplacementCount,
	}

	if result.WasModified && write {
		if err := writeInPlace(abs, result.ModifiedContent); err != nil {
			return ChangeReport{Path: rel, Err: err}
		}
	}

	return report
}

// 💾 writeInPlace overwrites path with content, keeping its file mode.
func writeInPlace(path string, content []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, content, mode); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// 🖼️ toFileChange converts a report into its user-facing outcome
func toFileChange(report ChangeReport) status.FileChange {
	change := status.FileChange{
		Path:         report.Path,
		Replacements: report.Replacements,
		Error:        report.Err,
	}
	switch {
	case report.Err != nil:
		change.Type = status.FileError
	case report.Changed:
		change.Type = status.FileChanged
	default:
		change.Type = status.FileSkipped
	}
	return change
}
