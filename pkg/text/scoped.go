package text

import (
	"context"
	"io"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 ScopedRule rewrites one property value inside a single selector block.
//
// The general rule table is unsafe for files where the same literal value
// appears in unrelated contexts; scoping the match to the enclosing block
// prevents collateral replacement. Only the property value is rewritten, the
// block opener, any other properties and the closing brace are left intact.
type ScopedRule struct {
	// Selector is the text that opens the block, e.g. ".app-loading-spinner"
	Selector string
	// Property is the property name whose value is rewritten, e.g. "color"
	Property string
	// From is the literal value to replace
	From string
	// To is the replacement value
	To string
}

// Compile builds the block-scoped pattern for the rule. The match is anchored
// on the selector's opening brace and stops at the property's terminating
// semicolon; the closing brace is deliberately outside the match.
func (sr ScopedRule) Compile() (*regexp.Regexp, error) {
	if sr.Selector == "" {
		return nil, errors.Errorf("selector is required")
	}
	if sr.Property == "" {
		return nil, errors.Errorf("property is required")
	}
	if sr.From == "" {
		return nil, errors.Errorf("from value is required")
	}

	pattern := "(" +
		regexp.QuoteMeta(sr.Selector) + `\s*\{[^}]*?` +
		regexp.QuoteMeta(sr.Property) + `:\s*` +
		")" +
		regexp.QuoteMeta(sr.From) + ";"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling scoped pattern: %w", err)
	}
	return re, nil
}

// ReplaceScoped applies scoped rules to content, in order. Each rule rewrites
// every occurrence of its property value inside the selector's block.
func (r *RegexReplacer) ReplaceScoped(ctx context.Context, content io.Reader, rules []ScopedRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for i, rule := range rules {
		re, err := rule.Compile()
		if err != nil {
			return nil, errors.Errorf("scoped rule %d: %w", i, err)
		}

		// The replacement value is literal text; escape $ so the expander
		// cannot misread it as a capture reference.
		to := strings.ReplaceAll(rule.To, "$", "$$")
		newContent := re.ReplaceAllString(currentContent, "${1}"+to+";")
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += len(re.FindAllStringIndex(currentContent, -1))
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}
