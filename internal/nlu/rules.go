package nlu

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"todo-assistant/internal/model"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// DefaultRules returns the embedded rule table.
func DefaultRules() []byte {
	return defaultRulesYAML
}

// IntentRule is one compiled intent with its matchers and score filters.
type IntentRule struct {
	Kind     IntentKind
	Matchers []*regexp.Regexp
	Filters  []*regexp.Regexp
}

// KeywordSet maps a whole-word keyword alternation to a value.
type KeywordSet struct {
	Value string
	re    *regexp.Regexp
}

// Match reports whether any keyword appears as a whole word in s.
func (k KeywordSet) Match(s string) bool {
	return k.re.MatchString(s)
}

// RuleSet is the compiled, immutable rule table.
type RuleSet struct {
	Intents []IntentRule

	Priorities []KeywordSet
	Urgency    []*regexp.Regexp
	Deferral   []*regexp.Regexp

	CategoryExplicit  *regexp.Regexp
	CategoryStopwords map[string]struct{}
	Hashtag           *regexp.Regexp
	Topics            []KeywordSet

	Prefixes []*regexp.Regexp
	Trailing []*regexp.Regexp
}

type rulesFile struct {
	Intents []struct {
		Kind     string   `yaml:"kind"`
		Matchers []string `yaml:"matchers"`
		Filters  []string `yaml:"filters"`
	} `yaml:"intents"`
	Priority struct {
		Keywords []keywordsFile `yaml:"keywords"`
		Urgency  []string       `yaml:"urgency"`
		Deferral []string       `yaml:"deferral"`
	} `yaml:"priority"`
	Category struct {
		Explicit  string         `yaml:"explicit"`
		Stopwords []string       `yaml:"stopwords"`
		Hashtag   string         `yaml:"hashtag"`
		Topics    []keywordsFile `yaml:"topics"`
	} `yaml:"category"`
	Payload struct {
		Prefixes []string `yaml:"prefixes"`
		Trailing []string `yaml:"trailing"`
	} `yaml:"payload"`
}

type keywordsFile struct {
	Value string   `yaml:"value"`
	Words []string `yaml:"words"`
}

// LoadRules parses and compiles a YAML rule table.
func LoadRules(data []byte) (*RuleSet, error) {
	if len(data) == 0 {
		return nil, ErrEmptyRules
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("LoadRules: parsing YAML: %w", err)
	}
	if len(f.Intents) == 0 {
		return nil, ErrEmptyRules
	}

	rs := &RuleSet{CategoryStopwords: make(map[string]struct{}, len(f.Category.Stopwords))}

	seen := make(map[IntentKind]bool, len(f.Intents))
	for i, in := range f.Intents {
		kind, err := ParseIntentKind(in.Kind)
		if err != nil {
			return nil, fmt.Errorf("LoadRules: intents[%d]: %w", i, err)
		}
		if seen[kind] {
			return nil, fmt.Errorf("%w: intents[%d]: duplicate kind %s", ErrInvalidRule, i, kind)
		}
		seen[kind] = true
		if len(in.Matchers) == 0 {
			return nil, fmt.Errorf("%w: intents[%d] (%s): matchers must not be empty", ErrInvalidRule, i, kind)
		}

		rule := IntentRule{Kind: kind}
		if rule.Matchers, err = compileAll(in.Matchers, ""); err != nil {
			return nil, fmt.Errorf("LoadRules: intents[%d] (%s) matchers: %w", i, kind, err)
		}
		if rule.Filters, err = compileAll(in.Filters, ""); err != nil {
			return nil, fmt.Errorf("LoadRules: intents[%d] (%s) filters: %w", i, kind, err)
		}
		rs.Intents = append(rs.Intents, rule)
	}

	var err error
	for i, kw := range f.Priority.Keywords {
		if !model.Priority(kw.Value).IsValid() {
			return nil, fmt.Errorf("%w: priority.keywords[%d]: unknown priority %q", ErrInvalidRule, i, kw.Value)
		}
		set, err := compileKeywords(kw)
		if err != nil {
			return nil, fmt.Errorf("LoadRules: priority.keywords[%d]: %w", i, err)
		}
		rs.Priorities = append(rs.Priorities, set)
	}
	if rs.Urgency, err = compileAll(f.Priority.Urgency, ""); err != nil {
		return nil, fmt.Errorf("LoadRules: priority.urgency: %w", err)
	}
	if rs.Deferral, err = compileAll(f.Priority.Deferral, ""); err != nil {
		return nil, fmt.Errorf("LoadRules: priority.deferral: %w", err)
	}

	if rs.CategoryExplicit, err = compileCapture(f.Category.Explicit); err != nil {
		return nil, fmt.Errorf("LoadRules: category.explicit: %w", err)
	}
	if rs.Hashtag, err = compileCapture(f.Category.Hashtag); err != nil {
		return nil, fmt.Errorf("LoadRules: category.hashtag: %w", err)
	}
	for _, w := range f.Category.Stopwords {
		rs.CategoryStopwords[strings.ToLower(w)] = struct{}{}
	}
	for i, kw := range f.Category.Topics {
		set, err := compileKeywords(kw)
		if err != nil {
			return nil, fmt.Errorf("LoadRules: category.topics[%d]: %w", i, err)
		}
		rs.Topics = append(rs.Topics, set)
	}

	if rs.Prefixes, err = compileAll(f.Payload.Prefixes, "(?i)"); err != nil {
		return nil, fmt.Errorf("LoadRules: payload.prefixes: %w", err)
	}
	if rs.Trailing, err = compileAll(f.Payload.Trailing, "(?i)"); err != nil {
		return nil, fmt.Errorf("LoadRules: payload.trailing: %w", err)
	}

	return rs, nil
}

func compileAll(patterns []string, flags string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(flags + p)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d]: %v", ErrInvalidRule, i, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func compileCapture(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: pattern needs a capture group", ErrInvalidRule)
	}
	return re, nil
}

func compileKeywords(kw keywordsFile) (KeywordSet, error) {
	if kw.Value == "" || len(kw.Words) == 0 {
		return KeywordSet{}, fmt.Errorf("%w: value and words are required", ErrInvalidRule)
	}
	quoted := make([]string, len(kw.Words))
	for i, w := range kw.Words {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	re, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return KeywordSet{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return KeywordSet{Value: kw.Value, re: re}, nil
}
