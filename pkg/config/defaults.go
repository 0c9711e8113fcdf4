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

package config

// 🎨 Default returns the built-in purple theme configuration.
//
// Rule order is a documented invariant of the table: the gradient rule must
// precede the bare hex rules so the gradient's internal hex tokens are
// consumed as a single match, and the bare hex rules carry a trailing \b so a
// 6-digit token is never matched inside a longer 8-digit one.
func Default() *Config {
	return &Config{
		Root:          ".",
		ComponentsDir: "src/components",
		DarkModeFile:  "src/styles/dark-mode.css",
		AppFile:       "src/styles/App.css",
		Suffix:        ".css",
		Rules: []Rule{
			// Gradient, before its constituent hex tokens
			{Pattern: `linear-gradient\(135deg,\s*#a855f7\s+0%,\s*#9333ea\s+100%\)`, Replacement: `var(--primary-gradient)`},

			// Hex colors
			{Pattern: `#9333ea\b`, Replacement: `var(--primary)`},
			{Pattern: `#a855f7\b`, Replacement: `var(--primary-light)`},
			{Pattern: `#c084fc\b`, Replacement: `var(--primary-lighter)`},
			{Pattern: `#7c3aed\b`, Replacement: `var(--primary-dark)`},
			{Pattern: `#f3e8ff\b`, Replacement: `var(--primary-bg-light)`},
			{Pattern: `#faf5ff\b`, Replacement: `var(--primary-bg-lighter)`},
			{Pattern: `#e9d5ff\b`, Replacement: `var(--primary-border)`},

			// rgba colors, rewritten to color-mix (modern CSS)
			{Pattern: `rgba\(\s*243,\s*232,\s*255,\s*0\.4\)`, Replacement: `color-mix(in srgb, var(--primary-bg-light) 40%, transparent)`},
			{Pattern: `rgba\(\s*233,\s*213,\s*255,\s*0\.6\)`, Replacement: `color-mix(in srgb, var(--primary-border) 60%, transparent)`},
			{Pattern: `rgba\(\s*168,\s*85,\s*247,\s*0\.05\)`, Replacement: `color-mix(in srgb, var(--primary-light) 5%, transparent)`},
			{Pattern: `rgba\(\s*168,\s*85,\s*247,\s*0\.1\)`, Replacement: `color-mix(in srgb, var(--primary) 10%, transparent)`},
			{Pattern: `rgba\(\s*168,\s*85,\s*247,\s*0\.15\)`, Replacement: `color-mix(in srgb, var(--primary-light) 15%, transparent)`},
			{Pattern: `rgba\(\s*168,\s*85,\s*247,\s*0\.2\)`, Replacement: `color-mix(in srgb, var(--primary-light) 20%, transparent)`},
			{Pattern: `rgba\(\s*168,\s*85,\s*247,\s*0\.3\)`, Replacement: `color-mix(in srgb, var(--primary) 30%, transparent)`},
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.02\)`, Replacement: `color-mix(in srgb, var(--primary) 2%, transparent)`},
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.05\)`, Replacement: `color-mix(in srgb, var(--primary) 5%, transparent)`},
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.1\)`, Replacement: `color-mix(in srgb, var(--primary) 10%, transparent)`},
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.15\)`, Replacement: `color-mix(in srgb, var(--primary) 15%, transparent)`},

			// Standard shadows stay plain variables
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.2\)`, Replacement: `var(--primary-shadow)`},
			{Pattern: `rgba\(\s*147,\s*51,\s*234,\s*0\.3\)`, Replacement: `var(--primary-shadow-hover)`},
		},
		ScopedRules: []ScopedRule{
			// The loading spinner color, scoped so the literal is not touched
			// anywhere else in the app stylesheet
			{Selector: ".app-loading-spinner", Property: "color", From: "#9333ea", To: "var(--primary)"},
		},
	}
}
