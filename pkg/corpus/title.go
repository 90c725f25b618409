package corpus

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// genericTitles are filename-derived titles too generic to keep.
var genericTitles = map[string]struct{}{
	"book":  {},
	"text":  {},
	"novel": {},
	"story": {},
}

// titleLine matches a line that starts with a capital and contains no
// terminal sentence punctuation.
var titleLine = regexp.MustCompile(`^[A-Z][^.!?]*$`)

// extractTitle derives a title from the filename (underscores and dashes
// become spaces). When the result is too short or generic, the first ten
// content lines are scanned for something that looks like a title: short,
// capitalized without terminal punctuation, or fully uppercase.
func (p *Processor) extractTitle(filename, content string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	title = strings.TrimSpace(whitespaceRun.ReplaceAllString(title, " "))

	_, generic := genericTitles[strings.ToLower(title)]
	if len(title) < 3 || generic {
		if fromContent := scanTitleLine(content); fromContent != "" {
			title = fromContent
		}
	}

	return cases.Title(language.English).String(title)
}

// scanTitleLine looks through the first ten lines for a plausible title.
func scanTitleLine(content string) string {
	lines := strings.SplitN(content, "\n", 11)
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 100 {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "chapter") {
			continue
		}
		if titleLine.MatchString(line) || isUpperString(line) {
			return line
		}
	}
	return ""
}
