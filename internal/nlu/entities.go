package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"todo-assistant/internal/model"
)

var digitRun = regexp.MustCompile(`\d+`)

// extractNumbers returns every maximal digit run in text, left to right.
// Runs that overflow int64 are skipped.
func extractNumbers(text string) []int64 {
	runs := digitRun.FindAllString(text, -1)
	if len(runs) == 0 {
		return nil
	}
	out := make([]int64, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.ParseInt(r, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (e *Engine) extractPriority(norm string) model.Priority {
	for _, set := range e.rules.Priorities {
		if set.Match(norm) {
			return model.Priority(set.Value)
		}
	}
	for _, re := range e.rules.Urgency {
		if re.MatchString(norm) {
			return model.PriorityHigh
		}
	}
	for _, re := range e.rules.Deferral {
		if re.MatchString(norm) {
			return model.PriorityLow
		}
	}
	return model.PriorityMedium
}

func (e *Engine) extractCategory(norm string) string {
	if re := e.rules.CategoryExplicit; re != nil {
		for _, m := range re.FindAllStringSubmatch(norm, -1) {
			if _, stop := e.rules.CategoryStopwords[m[1]]; !stop {
				return m[1]
			}
		}
	}
	if re := e.rules.Hashtag; re != nil {
		if m := re.FindStringSubmatch(norm); m != nil {
			return m[1]
		}
	}
	for _, set := range e.rules.Topics {
		if set.Match(norm) {
			return set.Value
		}
	}
	return ""
}

// extractPayload strips a command prefix, then trailing priority/category phrases,
// then surrounding quotes. For create an empty result falls back to the whole
// original text; for update it means no new text was given.
func (e *Engine) extractPayload(text string, fallback bool) string {
	s := strings.TrimSpace(text)

	for _, re := range e.rules.Prefixes {
		if loc := re.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + s[loc[1]:]
			break
		}
	}

	for changed := true; changed; {
		changed = false
		for _, re := range e.rules.Trailing {
			if loc := re.FindStringIndex(s); loc != nil && loc[1] > loc[0] {
				s = s[:loc[0]]
				changed = true
			}
		}
	}

	s = unquote(strings.TrimSpace(s))
	if s == "" && fallback {
		return strings.TrimSpace(text)
	}
	return s
}

// cleanTerm trims a captured search term, its surrounding quotes and trailing punctuation.
func cleanTerm(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "?!.")
	return unquote(strings.TrimSpace(s))
}

func unquote(s string) string {
	if n := len(s); n >= 2 && (s[0] == '"' || s[0] == '\'') && s[n-1] == s[0] {
		return strings.TrimSpace(s[1 : n-1])
	}
	return s
}
