// Package advisor is an interactive Gemini session over the wallet: it
// answers questions about the user's positions and results. It is an
// optional feature; the core never depends on it.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
You are a financial assistant for a personal portfolio-tracking app for the
Brazilian market (B3 stocks, BDRs, ETFs and crypto, all priced in BRL).
Answer questions about the user's portfolio using the report provided at the
start of the conversation. Be concise, answer in the user's language, and
never invent positions or prices that are not in the report.
`

// Advisor runs a REPL chat seeded with the wallet report.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates an Advisor writing to w and reading user input from r.
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session and primes it with the portfolio report.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, report string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	// The report is sent as the first turn so the model has the portfolio
	// before any question arrives.
	_, err = a.ask(ctx, "Here is the current portfolio report:\n\n"+report)
	return err
}

// ask sends one message and returns the model's text answer.
func (a *Advisor) ask(ctx context.Context, text string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive session. Initial prompts, if any, are consumed
// before reading from the user. The session ends on "bye" or EOF.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, report string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, report); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Carteira assistant. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if strings.TrimSpace(input) == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		answer, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
