package cli

import (
	"context"
	"os"
)

// Chat reads a prompt from the user and prints the career assistant's reply.
func (a *App) Chat(ctx context.Context) error {
	prompt, err := GetMultiline(a.reader, "Ask the career assistant", os.Stdout)
	if err != nil {
		return err
	}
	if prompt == "" {
		return nil
	}

	answer, err := a.api.GenerateAnswer(ctx, prompt)
	if err != nil {
		a.log.Error(ctx, "chat request failed", "error", err)
		return err
	}

	printlnFn(answer)
	return nil
}
