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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/themefix/pkg/status"
)

// 📦 phase is one step of the fixed processing sequence
type phase struct {
	name string
	run  func(ctx context.Context) error
}

// 🏃 phaseRunner executes phases strictly in order. Processing is
// single-threaded and synchronous; the phase order exists for report-order
// predictability, not correctness.
type phaseRunner struct {
	logger *zerolog.Logger
	user   *status.UserLogger
}

// 🏗️ newPhaseRunner creates a new runner
func newPhaseRunner(logger *zerolog.Logger, user *status.UserLogger) *phaseRunner {
	return &phaseRunner{
		logger: logger,
		user:   user,
	}
}

// 🏃 Run executes every phase in order. A failing phase is reported and never
// aborts the phases after it.
func (r *phaseRunner) Run(ctx context.Context, phases []phase) {
	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			r.logger.Warn().Err(err).Str("phase", p.name).Msg("run cancelled")
			return
		}

		r.logger.Debug().Str("phase", p.name).Msg("phase starting")
		if err := p.run(ctx); err != nil {
			r.user.Warning(fmt.Sprintf("%s: %v", p.name, err))
			r.logger.Error().Err(err).Str("phase", p.name).Msg("phase failed")
			continue
		}
		r.logger.Debug().Str("phase", p.name).Msg("phase finished")
	}
}
