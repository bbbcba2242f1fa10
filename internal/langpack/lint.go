package langpack

import (
	"strconv"

	"clikit/internal/diag"
	"clikit/internal/messages"
)

// IssueKind classifies lines that Parse skips or overrides.
type IssueKind uint8

const (
	IssueNoSeparator IssueKind = iota + 1
	IssueEmptyKey
	IssueDuplicateKey
)

func (k IssueKind) String() string {
	switch k {
	case IssueNoSeparator:
		return "no separator"
	case IssueEmptyKey:
		return "empty key"
	case IssueDuplicateKey:
		return "duplicate key"
	}
	return "unknown"
}

// Issue is one suspicious line of a text pack.
type Issue struct {
	File string
	Line int // 1-based
	Kind IssueKind
	Key  string
}

// Diagnostic describes the issue as a warning.
func (i Issue) Diagnostic() diag.Log {
	var title string
	switch i.Kind {
	case IssueNoSeparator:
		title = messages.LangpackWarnNoSeparator
	case IssueEmptyKey:
		title = messages.LangpackWarnEmptyKey
	default:
		title = messages.LangpackWarnDuplicateKey
	}
	log := diag.Warning(messages.Ref(title))
	if i.File != "" {
		log = log.With(messages.Field(messages.LangpackFile, i.File))
	}
	log = log.With(messages.Field(messages.LangpackLine, strconv.Itoa(i.Line)))
	if i.Key != "" {
		log = log.With(messages.Field(messages.LangpackKey, i.Key))
	}
	return log.WithOptional(messages.Field(messages.ConsoleErrorID, title))
}

// Lint reports the lines Parse would skip and the keys it would overwrite.
// Blank lines are not issues.
func Lint(file string, lines []string) []Issue {
	var issues []Issue
	seen := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		key, _, ok := splitLine(line)
		if !ok {
			kind := IssueNoSeparator
			if line[0] == ' ' {
				kind = IssueEmptyKey
			}
			issues = append(issues, Issue{File: file, Line: i + 1, Kind: kind})
			continue
		}
		if _, dup := seen[key]; dup {
			issues = append(issues, Issue{File: file, Line: i + 1, Kind: IssueDuplicateKey, Key: key})
			continue
		}
		seen[key] = struct{}{}
	}
	return issues
}
