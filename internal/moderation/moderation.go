package moderation

import (
	"strings"
)

// Engine is a deliberately simple admission gate for user-submitted
// greetings: case-insensitive substring matching against an injected deny
// list. The list comes from configuration, so terms can change without a
// redeploy.
type Engine struct {
	denyList []string
}

type Result struct {
	Accepted bool   `json:"accepted"`
	Term     string `json:"-"`
}

// NewEngine builds an engine from deny-list terms. Empty terms are dropped,
// the rest are lowercased once up front.
func NewEngine(terms []string) *Engine {
	denyList := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		denyList = append(denyList, term)
	}

	return &Engine{denyList: denyList}
}

// NewEngineFromConfig parses a comma-separated deny list.
func NewEngineFromConfig(denyList string) *Engine {
	return NewEngine(strings.Split(denyList, ","))
}

// Moderate never fails: text is accepted iff no deny-list term occurs as a
// substring, matched case-insensitively. The first matching term is
// reported for logging.
func (engine *Engine) Moderate(text string) Result {
	lowered := strings.ToLower(text)
	for _, term := range engine.denyList {
		if strings.Contains(lowered, term) {
			return Result{Accepted: false, Term: term}
		}
	}

	return Result{Accepted: true}
}
