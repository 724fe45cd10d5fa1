package services

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildOCRPrompt creates the instruction sent along with a resume image
func (pb *PromptBuilder) BuildOCRPrompt() string {
	return `You are an OCR engine. Transcribe all readable text in the attached resume image.

Rules:
- Output ONLY the transcribed text, no commentary and no markdown.
- Keep the reading order of the document, top to bottom, left column before right column.
- Keep section headings such as "Skills", "Experience" or "Education" on their own lines.
- Do not correct spelling and do not invent text that is not visible.`
}
