// Package safety flags release commands that delete, overwrite or publish
// state that a rerun cannot restore. Classification is regex based.
package safety

import (
	"regexp"
	"sync"
)

// Level represents the safety classification of a command.
type Level int

const (
	Safe Level = iota
	Destructive
)

func (l Level) String() string {
	if l == Destructive {
		return "destructive"
	}
	return "safe"
}

type rule struct {
	pattern *regexp.Regexp
	// exclude un-flags a command the pattern matched; nil means none.
	exclude *regexp.Regexp
}

var (
	compiled     []rule
	compiledOnce sync.Once
)

// destructive lists pattern/exclude pairs. An empty exclude never matches.
var destructive = [][2]string{
	{`\brm\s`, ""},
	{`\brm$`, ""},
	{`\brmdir\b`, ""},
	{`\bsudo\s`, ""},
	{`\bgit\s+push\b.*(\s--force\b|\s-f\b|\s--delete\b|\s\+)`, ""},
	{`\bgit\s+clean\b.*\s-\w*f`, ""},
	{`\bgit\s+reset\s+--hard\b`, ""},
	{`\bgit\s+tag\s+-d\b`, ""},
	{`\bsvn\s+(delete|del|remove|rm)\b`, ""},
	{`>+\s*/dev/`, `>+\s*/dev/(null|stdout|stderr)(\s|;|&|$)`},
	{`:\s*>\s*\S`, ""},
	{`\btruncate\b`, ""},
	{`\bdd\s+if=`, ""},
	{`\bfind\b.*\s-delete\b`, ""},
	{`\bchmod\s+-R\b`, ""},
	{`\bchown\s+-R\b`, ""},
	{`\bmv\s+/`, ""},
}

func compileRules() {
	compiledOnce.Do(func() {
		compiled = make([]rule, len(destructive))
		for i, r := range destructive {
			compiled[i].pattern = regexp.MustCompile(r[0])
			if r[1] != "" {
				compiled[i].exclude = regexp.MustCompile(r[1])
			}
		}
	})
}

// Classify examines a shell command and returns its safety level.
func Classify(command string) Level {
	compileRules()
	for _, r := range compiled {
		if !r.pattern.MatchString(command) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(command) {
			continue
		}
		return Destructive
	}
	return Safe
}
