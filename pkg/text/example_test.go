package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/themefix/pkg/text"
)

func ExampleRegexReplacer_ReplaceText() {
	// Create a replacer
	replacer := text.NewRegexReplacer()

	// Define an ordered rule table: the gradient rule must come first so its
	// internal hex tokens are consumed as a single match
	rules := []text.ReplacementRule{
		{
			Pattern:     `linear-gradient\(135deg,\s*#a855f7\s+0%,\s*#9333ea\s+100%\)`,
			Replacement: `var(--primary-gradient)`,
		},
		{
			Pattern:     `#9333ea\b`,
			Replacement: `var(--primary)`,
		},
	}

	// Some stylesheet content
	content := strings.NewReader("background: linear-gradient(135deg, #a855f7 0%, #9333ea 100%); color: #9333ea;")

	// Apply replacements
	result, err := replacer.ReplaceText(context.Background(), "button.css", content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: background: var(--primary-gradient); color: var(--primary);
	// Changes: 2
	// Was Modified: true
}

func ExampleRegexReplacer_ValidateRules() {
	replacer := text.NewRegexReplacer()

	// The second rule's pattern re-matches the first rule's replacement, so
	// a second run over rewritten output would not be a no-op
	rules := []text.ReplacementRule{
		{Pattern: `old-purple`, Replacement: `#9333ea`},
		{Pattern: `#9333ea\b`, Replacement: `var(--primary)`},
	}

	err := replacer.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: pattern re-matches replacement of rule 0, table is not idempotent
}
