package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const prompt = "mentor> "

// Run starts the interactive REPL of session, reading from r and writing to w.
// prompts are sent first, as if typed by the user. Typing "bye" or closing r ends it.
func Run(ctx context.Context, w io.Writer, r io.Reader, session *Session, prompts ...string) error {
	in := bufio.NewReader(r)

	for _, m := range session.Messages() {
		fmt.Fprintln(w, m.Text)
	}
	fmt.Fprintln(w, "Escribe 'bye' para salir.")

	for {
		if !session.Started() {
			for i, q := range QuickReplies {
				fmt.Fprintf(w, "  %d) %s\n", i+1, q)
			}
		}
		fmt.Fprint(w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = in.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}
		if !session.Started() {
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(QuickReplies) {
				input = QuickReplies[n-1]
			}
		}

		reply, err := session.Send(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, reply.Text)
	}
}
