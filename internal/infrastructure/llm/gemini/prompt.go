package gemini

import "fmt"

func buildResearchPrompt(question, documentText string) string {
	return fmt.Sprintf("Document: %s\nQuestion: %s", documentText, question)
}
