package domain

import "strings"

const (
	statusEntrySeparator = "\x00"
	statusCodeLength     = 2
	statusPathIndex      = 3
)

// ParseGitChangeStatus splits a porcelain status code into its staged and
// unstaged columns. "??" marks an untracked file; unknown characters and
// codes shorter than two characters yield no status.
func ParseGitChangeStatus(code string) (staged, unstaged ChangeStatus) {
	if len(code) < statusCodeLength {
		return "", ""
	}

	if strings.HasPrefix(code, "??") {
		return "", StatusUntracked
	}

	column := func(c byte) ChangeStatus {
		s := ChangeStatus(c)
		if s == StatusUntracked || !KnownChangeStatuses[s] {
			return ""
		}
		return s
	}
	return column(code[0]), column(code[1])
}

// ParseGitStatusOutput parses the NUL separated output of
// `git status --porcelain --short --null` into changes keyed by path.
//
// A rename or copy spans two entries: the one carrying the status holds the
// target path and the following one the origin path, as in
// "R  new.ts\x00old.ts\x00". When a path is reported more than once the last
// entry wins.
func ParseGitStatusOutput(output string) map[string]GitChange {
	changes := make(map[string]GitChange)
	entries := strings.Split(output, statusEntrySeparator)

	for i := 0; i < len(entries); {
		entry := entries[i]
		i++

		if entry == "" {
			continue
		}

		staged, unstaged := ParseGitChangeStatus(entry[:min(len(entry), statusCodeLength)])

		path := ""
		if len(entry) > statusPathIndex {
			path = entry[statusPathIndex:]
		}

		if (staged == "" && unstaged == "") || path == "" {
			continue
		}

		change := GitChange{Path: path, Staged: staged, Unstaged: unstaged}

		if change.IsRenameOrCopy() {
			if i < len(entries) && entries[i] != "" {
				change.OriginPath = entries[i]
				i++
				changes[path] = change
			}
			continue
		}

		changes[path] = change
	}

	return changes
}
