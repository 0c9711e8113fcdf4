package text

import (
	"context"
	"io"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 ReplacementRule defines a single pattern rewrite applied across file content
type ReplacementRule struct {
	// Pattern is a regular expression matched against the full file text
	Pattern string
	// Replacement is the literal text inserted for every match
	Replacement string
	// FileFilterGlob optionally restricts the rule to matching file paths
	FileFilterGlob string
}

// 📊 ReplacementResult contains the results of a replacement pass over one file
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of matches found, counted per rule
	// against that rule's pre-replacement text
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// 🎯 Replacer defines the interface for text replacement operations
type Replacer interface {
	// ReplaceText applies a set of replacement rules to the content of path
	ReplaceText(ctx context.Context, path string, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid and that the table is idempotent
	ValidateRules(rules []ReplacementRule) error
}

// RegexReplacer implements Replacer using ordered regular expression rules
type RegexReplacer struct{}

// 🏭 NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{}
}

// ReplaceText implements Replacer.ReplaceText. Rules are applied in table
// order, each rule rewriting all non-overlapping matches, with the output of
// one rule feeding the next. Replacement text is inserted literally.
func (r *RegexReplacer) ReplaceText(ctx context.Context, path string, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
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
		if rule.Pattern == "" {
			continue
		}

		applies, err := ruleAppliesTo(rule, path)
		if err != nil {
			return nil, errors.Errorf("rule %d: matching file filter: %w", i, err)
		}
		if !applies {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d: compiling pattern: %w", i, err)
		}

		newContent := re.ReplaceAllLiteralString(currentContent, rule.Replacement)

		// Count against the pre-replacement text for this rule. This can
		// overcount when an earlier rule already consumed overlapping spans.
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += len(re.FindAllStringIndex(currentContent, -1))
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules. Beyond per-rule checks it
// enforces the idempotence guard: no rule's replacement text may be re-matched
// by any rule's pattern, so a second pass over rewritten output is a no-op.
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	compiled := make([]*regexp.Regexp, len(rules))
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return errors.Errorf("rule %d: compiling pattern: %w", i, err)
		}
		compiled[i] = re
	}

	for i, rule := range rules {
		if rule.Replacement == "" {
			continue
		}
		for j, re := range compiled {
			if re.MatchString(rule.Replacement) {
				return errors.Errorf("rule %d: pattern re-matches replacement of rule %d, table is not idempotent", j, i)
			}
		}
	}

	return nil
}

// 🔍 ruleAppliesTo checks the rule's file filter glob against path
func ruleAppliesTo(rule ReplacementRule, path string) (bool, error) {
	if rule.FileFilterGlob == "" || path == "" {
		return true, nil
	}
	matched, err := doublestar.Match(rule.FileFilterGlob, filepath.ToSlash(path))
	if err != nil {
		return false, errors.Errorf("matching glob %q: %w", rule.FileFilterGlob, err)
	}
	return matched, nil
}
