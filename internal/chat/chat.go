// Package chat implements the guided-interview assistant. The assistant
// gathers resume content conversationally; the gathered transcript is later
// handed to extraction like any other raw text source.
package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dscirocco/cvarchitect/internal/llm"
	"github.com/dscirocco/cvarchitect/internal/types"
)

// DefaultLanguage is used when the request does not carry one. The chat
// opens in English unlike extraction, which defaults to Italian, because
// the interview switches to whatever language the user replies in.
const DefaultLanguage = "English"

const systemInstructionTemplate = `You are a friendly and professional HR Recruiter Assistant.
Your goal is to interview the user to gather all necessary information to build their customized CV.
If asked who created, designed, or programmed you, you MUST answer that you were created by "Diego Scirocco".

You need to gather:
1. Personal Info (Name, Current Role or Professional Title, Location, Contacts) if not already known.
2. Professional Summary (Brief bio).
3. Work Experience (Company, Role, Dates, Key achievements).
4. Education (Degree, School, Dates).
5. Skills (Hard & Soft skills).
6. Languages.
7. Certifications (if any).

GUIDELINES:
- Start the conversation in %s, but if the user replies in another language, switch to that language immediately.
- Ask ONE or TWO questions at a time. Do not overwhelm the user.
- Be encouraging and polite.
- If the user provides a lot of info, summarize it briefly to confirm.
- Keep your responses concise.
- IMPORTANT: You cannot generate files or documents. Your ONLY role is to interview the user. When you have enough information, simply say "I have all the information needed." and ask the user to click the "Create CV" button to proceed. NEVER say you will "compile" or "format" the document yourself.`

// ChatError indicates every candidate model failed to answer.
type ChatError struct {
	Message string
	Cause   error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("chat error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("chat error: %s", e.Message)
}

func (e *ChatError) Unwrap() error {
	return e.Cause
}

// Respond answers the latest message of the conversation and returns the
// assistant's reply. Candidate models are attempted in order, first
// success wins.
func Respond(ctx context.Context, client llm.Client, messages []types.ChatMessage, language string) (string, error) {
	if len(messages) == 0 {
		return "", &ChatError{Message: "empty message history"}
	}
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}

	history := buildTurns(messages, language)

	var lastErr error
	for _, model := range client.Candidates() {
		reply, err := client.GenerateChat(ctx, model, history)
		if err != nil {
			log.Printf("[CHAT] model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		return reply, nil
	}

	return "", &ChatError{Message: "all candidate models failed", Cause: lastErr}
}

// buildTurns converts the editor's transcript into provider turns. The
// provider requires the history to open with a user turn, so leading
// assistant messages are dropped and the system instruction is folded
// into the earliest surviving user message.
func buildTurns(messages []types.ChatMessage, language string) []llm.ChatTurn {
	instruction := fmt.Sprintf(systemInstructionTemplate, language)

	turns := make([]llm.ChatTurn, 0, len(messages))
	for _, m := range messages {
		role := "model"
		if m.Role == "user" {
			role = "user"
		}
		turns = append(turns, llm.ChatTurn{Role: role, Text: m.Content})
	}

	firstUser := -1
	for i, t := range turns[:len(turns)-1] {
		if t.Role == "user" {
			firstUser = i
			break
		}
	}

	if firstUser >= 0 {
		turns = turns[firstUser:]
		turns[0].Text = fmt.Sprintf("SYSTEM INSTRUCTION: %s\n\nUSER MESSAGE: %s", instruction, turns[0].Text)
		return turns
	}

	// No user turn before the final message: send only the final message
	// with the instruction folded in.
	last := turns[len(turns)-1]
	last.Role = "user"
	last.Text = fmt.Sprintf("SYSTEM INSTRUCTION: %s\n\nUSER MESSAGE: %s", instruction, last.Text)
	return []llm.ChatTurn{last}
}
