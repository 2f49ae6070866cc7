package docgen

import (
	"regexp"
	"strings"
)

type ChapterState string

const (
	ChapterEmpty    ChapterState = "empty"
	ChapterPartial  ChapterState = "partial"
	ChapterComplete ChapterState = "complete"
)

// Analysis summarizes a document buffer for the editor sidebar.
type Analysis struct {
	WordCount            int                     `json:"word_count"`
	CompletionPercentage int                     `json:"completion_percentage"`
	EmptySections        int                     `json:"empty_sections"`
	Chapters             map[string]ChapterState `json:"chapters"`
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	headingPattern = regexp.MustCompile(`<h1[^>]*>`)
)

func stripTags(buf string) string {
	return tagPattern.ReplaceAllString(buf, "")
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// WordCount counts visible words, markup excluded.
func WordCount(buf string) int {
	return countWords(stripTags(buf))
}

// Analyze computes word count, completion percentage over h1 sections
// (a section counts as filled above 50 visible characters) and the
// per-chapter fill state.
func Analyze(buf string) Analysis {
	sections := headingPattern.Split(buf, -1)
	total := len(sections) - 1
	filled := 0
	if total > 0 {
		for _, section := range sections[1:] {
			if len(strings.TrimSpace(stripTags(section))) > 50 {
				filled++
			}
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(float64(filled)/float64(total)*100 + 0.5)
	}

	states := make(map[string]ChapterState, len(chapters))
	for _, chapter := range chapters {
		states[chapter.ID] = ChapterProgress(buf, chapter.Heading())
	}

	return Analysis{
		WordCount:            WordCount(buf),
		CompletionPercentage: percentage,
		EmptySections:        max(0, total-filled),
		Chapters:             states,
	}
}

// ChapterProgress grades the content between a chapter heading and the next
// heading by word count: under 10 words empty, under 50 partial, otherwise
// complete.
func ChapterProgress(buf, heading string) ChapterState {
	pattern, err := regexp.Compile(`<h1[^>]*>` + regexp.QuoteMeta(heading) + `</h1>`)
	if err != nil {
		return ChapterEmpty
	}
	loc := pattern.FindStringIndex(buf)
	if loc == nil {
		return ChapterEmpty
	}

	rest := buf[loc[1]:]
	end := len(rest)
	if next := headingPattern.FindStringIndex(rest); next != nil {
		end = next[0]
	}

	words := countWords(stripTags(rest[:end]))
	switch {
	case words < 10:
		return ChapterEmpty
	case words < 50:
		return ChapterPartial
	default:
		return ChapterComplete
	}
}
