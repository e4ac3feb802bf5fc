package llm

import "fmt"

// instructs the model to answer with bare source code only
func buildSystemPrompt(language string) string {
	return fmt.Sprintf(`You are a coding assistant. Generate only raw code in %s.
- No markdown
- No explanations
- No comments
- No backticks
Return ONLY the code.`, language)
}

func buildUserPrompt(prompt string) string {
	return fmt.Sprintf("Prompt: %s\n\nCode:\n", prompt)
}
