package matcher

import "regexp"

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	rePhone = regexp.MustCompile(`\+?\d[\d\-\s]{8,}`)
	reName  = regexp.MustCompile(`[A-Z][a-z]+\s[A-Z][a-z]+`)
)

// Normalize strips contact details from raw resume text: every email
// address, every phone-number-like run, and the first "Firstname Lastname"
// shaped pair. The name heuristic runs once per document and may hit a
// two-word title instead of a name; redaction is best effort only.
func Normalize(text string) string {
	text = reEmail.ReplaceAllString(text, "")
	text = rePhone.ReplaceAllString(text, "")

	if loc := reName.FindStringIndex(text); loc != nil {
		text = text[:loc[0]] + text[loc[1]:]
	}

	return text
}
