package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
)

// sendOptions are the flags of the send command
type sendOptions struct {
	output string
	copy   bool
	raw    bool
}

func newSendCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send [message]",
		Short: "Send one message to the assistant and print the reply",
		Long: `Send a single message to the assistant webhook and print its reply.
The message is read from the argument, or from stdin when none is given.
Replies are rendered as markdown on a terminal and printed raw otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readMessage(cmd, args)
			if err != nil {
				return err
			}
			return runSend(cmd, deps, flags, input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save the reply to a file")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the reply to the clipboard")
	cmd.Flags().BoolVarP(&opts.raw, "raw", "r", false, "Print the reply without decoration")
	return cmd
}

// readMessage takes the message from args, or from stdin when it is piped
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runSend(cmd *cobra.Command, deps *Dependencies, flags *globalFlags, input string, opts *sendOptions) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	initLogging(cfg, false)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	raw := opts.raw || !isTerminal(out)

	client, err := deps.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	// A panel without greeting holds exactly this one exchange
	panel := chat.NewPanel(chat.WithGreeting(""))

	var spin *spinner
	if !raw {
		spin = newSpinner(errOut, "Enviando mensagem")
		spin.start()
	}

	reply, err := panel.Send(cmd.Context(), client, strings.TrimRight(input, "\n"))
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		if errors.Is(err, chat.ErrEmptyInput) {
			return fmt.Errorf("message cannot be empty")
		}
		return fmt.Errorf("send failed: %w", err)
	}
	if spin != nil {
		spin.stopWithSuccess("Resposta recebida")
	}

	text := reply.Content

	if opts.copy || cfg.CopyToClipboard {
		if err := deps.CopyToClipboard(text); err != nil {
			fmt.Fprintln(errOut, warningStyle().Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else if !raw {
			fmt.Fprintln(errOut, successStyle().Render("✓ Copied to clipboard"))
		}
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !raw {
			fmt.Fprintln(errOut, successStyle().Render("✓ Reply saved to "+opts.output))
		}
		return nil
	}

	if raw {
		fmt.Fprintln(out, text)
		return nil
	}

	printReply(out, cfg, text)
	return nil
}

// printReply prints the reply in the chat screen's assistant bubble
func printReply(out io.Writer, cfg config.Config, text string) {
	bubbleWidth := terminalWidth(out) - 4
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	labelStyle, bubbleStyle := assistantStyles()
	rendered := render.Reply(text, render.OptionsFromConfig(cfg).WithWidth(bubbleWidth-4))

	fmt.Fprintln(out, labelStyle.Render("✦ CIT"))
	fmt.Fprintln(out, bubbleStyle.Width(bubbleWidth).Render(rendered))
}
