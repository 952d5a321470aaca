package llmjudge

import "fmt"

const systemPrompt = `You are an expert at judging how well AI language models can read, extract, and cite web content. Respond with JSON only, no prose, matching exactly this shape:
{
  "structure_quality": {"score": 0-100, "notes": "..."},
  "content_clarity": {"score": 0-100, "notes": "..."},
  "factual_support": {"score": 0-100, "notes": "..."},
  "citation_readiness": {"score": 0-100, "notes": "..."},
  "extractability": {"score": 0-100, "notes": "..."},
  "overall_score": 0-100,
  "improvements": ["..."],
  "example_excerpts": ["..."]
}`

// buildPrompts returns the system and user prompts for one judge call.
func buildPrompts(pageText string) (string, string) {
	user := fmt.Sprintf(
		"Evaluate the following page content for LLM readability:\n\n%s", pageText)
	return systemPrompt, user
}
