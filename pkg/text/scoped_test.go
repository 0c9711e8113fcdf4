package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexReplacer_ReplaceScoped(t *testing.T) {
	spinnerRule := ScopedRule{
		Selector: ".app-loading-spinner",
		Property: "color",
		From:     "#9333ea",
		To:       "var(--primary)",
	}

	tests := []struct {
		name         string
		content      string
		rules        []ScopedRule
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name: "rewrites_only_inside_block",
			content: `.app-loading-spinner {
  width: 48px;
  color: #9333ea;
  animation: spin 1s linear infinite;
}

.other {
  color: #9333ea;
}
`,
			rules: []ScopedRule{spinnerRule},
			want: `.app-loading-spinner {
  width: 48px;
  color: var(--primary);
  animation: spin 1s linear infinite;
}

.other {
  color: #9333ea;
}
`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name: "block_without_property_untouched",
			content: `.app-loading-spinner {
  width: 48px;
}
`,
			rules: []ScopedRule{spinnerRule},
			want: `.app-loading-spinner {
  width: 48px;
}
`,
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "file_without_block_untouched",
			content:      ".other { color: #9333ea; }\n",
			rules:        []ScopedRule{spinnerRule},
			want:         ".other { color: #9333ea; }\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "closing_brace_not_part_of_match",
			content:      `.app-loading-spinner { color: #9333ea; }`,
			rules:        []ScopedRule{spinnerRule},
			want:         `.app-loading-spinner { color: var(--primary); }`,
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "dollar_in_replacement_is_literal",
			content:      ".app-loading-spinner { color: #9333ea; }",
			rules:        []ScopedRule{{Selector: ".app-loading-spinner", Property: "color", From: "#9333ea", To: "$accent"}},
			want:         ".app-loading-spinner { color: $accent; }",
			wantCount:    1,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewRegexReplacer()
			result, err := replacer.ReplaceScoped(context.Background(), strings.NewReader(tt.content), tt.rules)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestRegexReplacer_ReplaceScoped_Idempotent(t *testing.T) {
	rule := ScopedRule{
		Selector: ".app-loading-spinner",
		Property: "color",
		From:     "#9333ea",
		To:       "var(--primary)",
	}
	content := ".app-loading-spinner {\n  color: #9333ea;\n}\n"

	replacer := NewRegexReplacer()
	first, err := replacer.ReplaceScoped(context.Background(), strings.NewReader(content), []ScopedRule{rule})
	require.NoError(t, err)
	require.True(t, first.WasModified)

	second, err := replacer.ReplaceScoped(context.Background(), strings.NewReader(string(first.ModifiedContent)), []ScopedRule{rule})
	require.NoError(t, err)
	assert.False(t, second.WasModified)
}

func TestScopedRule_Compile(t *testing.T) {
	tests := []struct {
		name      string
		rule      ScopedRule
		wantError string
	}{
		{
			name: "valid",
			rule: ScopedRule{Selector: ".x", Property: "color", From: "#fff", To: "var(--a)"},
		},
		{
			name:      "missing_selector",
			rule:      ScopedRule{Property: "color", From: "#fff"},
			wantError: "selector is required",
		},
		{
			name:      "missing_property",
			rule:      ScopedRule{Selector: ".x", From: "#fff"},
			wantError: "property is required",
		},
		{
			name:      "missing_from",
			rule:      ScopedRule{Selector: ".x", Property: "color"},
			wantError: "from value is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rule.Compile()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
