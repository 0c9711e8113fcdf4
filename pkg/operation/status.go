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

	"github.com/rs/zerolog"
	"github.com/walteh/themefix/pkg/status"
)

// 🔍 Status runs the full pass without writing anything and reports whether
// any file would change.
func (op *operator) Status(ctx context.Context) (bool, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msg("checking which stylesheets would change")

	op.user.Header("Checking stylesheets (dry run)...")

	reports := op.run(ctx, false)

	needsFix := false
	changed := 0
	for _, report := range reports {
		if report.Changed {
			needsFix = true
			changed++
		}
	}

	formatter := status.NewDefaultFileFormatter()
	op.user.Done(formatter.FormatSummary(len(reports), changed))

	return needsFix, nil
}
