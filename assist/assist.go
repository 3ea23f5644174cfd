// Package assist implements the interactive AI advisor. The advisor is a
// Gemini chat primed with the current budget rendered as markdown, so it can
// answer questions about periods and transactions and suggest categories for
// the uncategorized ones.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const instruction = `You are a personal budgeting advisor. The user's budget
is given below as markdown: the periods they track and every transaction,
with its amount, status (pending or certain) and the period it is linked to.

Answer the user's questions about their budget. When asked, suggest a
category for transactions that have none, inferring it from the description.
Keep answers short and concrete, and format them as markdown.
`

// Advisor is a chat session with the budgeting advisor.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates an Advisor writing its answers to w and reading user input
// from r.
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start creates the Gemini chat, primed with the budget content.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, budget string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: instruction},
			{Text: budget},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive session. Prompts, if any, are asked before
// reading from the user.
func (a *Advisor) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to bcs budget assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
