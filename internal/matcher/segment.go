package matcher

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var sectionPatterns = compileSectionPatterns()

func compileSectionPatterns() map[SectionName]*regexp.Regexp {
	patterns := make(map[SectionName]*regexp.Regexp)
	for _, name := range WeightedSections() {
		quoted := make([]string, 0, len(sectionHeaders[name]))
		for _, header := range sectionHeaders[name] {
			quoted = append(quoted, regexp.QuoteMeta(header))
		}
		patterns[name] = regexp.MustCompile(`(` + strings.Join(quoted, "|") + `)`)
	}
	return patterns
}

type sectionStart struct {
	name  SectionName
	start int
}

// Segment splits normalized resume text into sections. Each detected
// section runs from the first occurrence of one of its headers up to the
// next detected header, so section text starts with its own header word.
// Contact Info is always the first 500 characters of the collapsed text.
func Segment(text string) SectionSet {
	sections := newSectionSet()

	text = collapseWhitespace(text)
	lowered := asciiLower(text)

	var found []sectionStart
	for _, name := range WeightedSections() {
		if loc := sectionPatterns[name].FindStringIndex(lowered); loc != nil {
			found = append(found, sectionStart{name: name, start: loc[0]})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].start < found[j].start
	})

	for i, sec := range found {
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		if span := strings.TrimSpace(text[sec.start:end]); span != "" {
			sections.texts[sec.name] = span
		}
	}

	if head := firstRunes(text, contactInfoLength); head != "" {
		sections.texts[ContactInfo] = head
	}

	return sections
}

// collapseWhitespace turns every whitespace run, newlines included, into a
// single space.
func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// asciiLower lowercases ASCII letters only so byte offsets in the result
// line up with the input.
func asciiLower(text string) string {
	buf := []byte(text)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c + ('a' - 'A')
		}
	}
	return string(buf)
}

func firstRunes(text string, n int) string {
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
