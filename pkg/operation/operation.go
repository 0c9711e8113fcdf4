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
	"context"

	"github.com/walteh/themefix/pkg/config"
	"github.com/walteh/themefix/pkg/status"
	"github.com/walteh/themefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for themefix operations
type Operator interface {
	// Fix runs the full rewrite pass and writes changed files in place
	Fix(ctx context.Context) error
	// Status is a dry run indicating whether any file would change
	Status(ctx context.Context) (bool, error)
}

// 📊 ChangeReport is the per-file outcome of a pass
type ChangeReport struct {
	// Path is the project-root-relative path of the file
	Path string
	// Changed reports whether the content differed after the rules ran
	Changed bool
	// Replacements is the substitution count across all rules
	Replacements int
	// Err is the per-file I/O or engine failure, if any
	Err error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config carries the paths and the ordered rule table
	Config *config.Config
	// UserLogger receives the per-file outcome lines
	UserLogger *status.UserLogger
	// Replacer overrides the default engine, mainly for tests
	Replacer *text.RegexReplacer
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.UserLogger == nil {
		return nil, errors.Errorf("user logger is required")
	}

	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewRegexReplacer()
	}

	// The rule table is validated up front so a broken table fails the run
	// before any file is touched
	if err := replacer.ValidateRules(opts.Config.ReplacementRules()); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &operator{
		config:   opts.Config,
		user:     opts.UserLogger,
		replacer: replacer,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	user     *status.UserLogger
	replacer *text.RegexReplacer
}
