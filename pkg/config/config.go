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

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/themefix/pkg/text"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule represents one ordered pattern rewrite in the substitution table
type Rule struct {
	Pattern     string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement" hcl:"replacement"`
	File        string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // optional glob restricting the rule to matching paths
}

// 🎯 ScopedRule represents a rewrite constrained to a single selector block
type ScopedRule struct {
	Selector string `json:"selector" yaml:"selector" hcl:"selector"`
	Property string `json:"property" yaml:"property" hcl:"property"`
	From     string `json:"from" yaml:"from" hcl:"from"`
	To       string `json:"to" yaml:"to" hcl:"to"`
}

// 📚 Config represents the complete configuration
type Config struct {
	// Root is the project root every other path is resolved against
	Root string `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`

	// ComponentsDir is scanned (non-recursively) for stylesheets
	ComponentsDir string `json:"components_dir,omitempty" yaml:"components_dir,omitempty" hcl:"components_dir,optional"`

	// DarkModeFile is a single explicitly named stylesheet
	DarkModeFile string `json:"dark_mode_file,omitempty" yaml:"dark_mode_file,omitempty" hcl:"dark_mode_file,optional"`

	// AppFile only receives the scoped rules, never the general table
	AppFile string `json:"app_file,omitempty" yaml:"app_file,omitempty" hcl:"app_file,optional"`

	// Suffix is the exact, case-sensitive filename suffix kept by discovery
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`

	// Rules is the ordered substitution table. Order is significant: specific
	// patterns (the gradient) must come before general ones (its constituent
	// hex tokens) or a general rule would break the specific match apart.
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`

	// ScopedRules apply only to AppFile
	ScopedRules []ScopedRule `json:"scoped_rules,omitempty" yaml:"scoped_rules,omitempty" hcl:"scoped_rule,block"`
}

// 🎯 Load loads the configuration from a file. An empty path yields the
// built-in default configuration.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file, using built-in defaults")
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills defaults, cleans paths and checks the rule table
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Suffix == "" {
		cfg.Suffix = ".css"
	}
	if cfg.ComponentsDir == "" && cfg.DarkModeFile == "" && cfg.AppFile == "" {
		return errors.Errorf("at least one of components_dir, dark_mode_file or app_file is required")
	}

	cfg.Root = filepath.Clean(cfg.Root)
	if cfg.ComponentsDir != "" {
		cfg.ComponentsDir = filepath.Clean(cfg.ComponentsDir)
	}
	if cfg.DarkModeFile != "" {
		cfg.DarkModeFile = filepath.Clean(cfg.DarkModeFile)
	}
	if cfg.AppFile != "" {
		cfg.AppFile = filepath.Clean(cfg.AppFile)
	}

	// Rule table checks, including the idempotence guard
	replacer := text.NewRegexReplacer()
	if err := replacer.ValidateRules(cfg.ReplacementRules()); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	for i, sr := range cfg.ScopedRules {
		if _, err := sr.toTextRule().Compile(); err != nil {
			return errors.Errorf("scoped rule %d: %w", i, err)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: %s/*%s + %s + %s (%d rules, %d scoped)",
		cfg.Root, cfg.ComponentsDir, cfg.Suffix, cfg.DarkModeFile, cfg.AppFile,
		len(cfg.Rules), len(cfg.ScopedRules))
}

// 🔄 ReplacementRules converts the rule table for the text engine
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, text.ReplacementRule{
			Pattern:        r.Pattern,
			Replacement:    r.Replacement,
			FileFilterGlob: r.File,
		})
	}
	return rules
}

// 🎯 ScopedReplacementRules converts the scoped rules for the text engine
func (cfg *Config) ScopedReplacementRules() []text.ScopedRule {
	rules := make([]text.ScopedRule, 0, len(cfg.ScopedRules))
	for _, sr := range cfg.ScopedRules {
		rules = append(rules, sr.toTextRule())
	}
	return rules
}

func (sr ScopedRule) toTextRule() text.ScopedRule {
	return text.ScopedRule{
		Selector: sr.Selector,
		Property: sr.Property,
		From:     sr.From,
		To:       sr.To,
	}
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
