package usecase

import "fmt"

// DefaultPromptContextChars is the hard cutoff on how much document text is
// forwarded to the answer generator per question. Content beyond it is
// invisible to every question. The limit is deliberately a plain character
// cutoff, not word- or token-aware: changing it changes observable answers.
const DefaultPromptContextChars = 4000

// queryLogChars bounds the copy of the user question written to logs.
const queryLogChars = 50

const chatPromptTemplate = `Based on the following PDF content, please answer the user's question.

PDF Content:
%s

User Question: %s

Please provide a concise and relevant answer based solely on the information given in the PDF content.`

// buildChatPrompt concatenates the instruction preamble, the first
// contextChars characters of the document text and the verbatim question.
func buildChatPrompt(content, question string, contextChars int) string {
	if contextChars <= 0 {
		contextChars = DefaultPromptContextChars
	}
	return fmt.Sprintf(chatPromptTemplate, truncateRunes(content, contextChars), question)
}

// truncateRunes cuts s to at most n characters. The cutoff counts runes, not
// bytes, so multibyte text is never split mid-character.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
