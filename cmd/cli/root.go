package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"todo-assistant/config"
	"todo-assistant/internal/agent"
	"todo-assistant/internal/app"
	"todo-assistant/pkg/log"
)

const (
	chatPrompt = "> "
	chatBanner = "Todo assistant. Type \"help\" for commands, \"exit\" to quit."
)

// cli carries the state shared by the subcommands.
type cli struct {
	verbose   bool
	showCalls bool
	sessionID string

	app *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Manage a todo list in plain language",
		Long: `todo runs the assistant locally against an in-memory todo list.

LLM providers from config.yaml are used for utterances the rules cannot map.
Without an enabled provider the assistant runs on rules only.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.chat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level to stderr")
	root.PersistentFlags().BoolVar(&c.showCalls, "show-calls", false, "print the executed calls before each reply")
	root.PersistentFlags().StringVar(&c.sessionID, "session", "", "session id (default: random)")

	root.AddCommand(
		&cobra.Command{
			Use:   "ask <utterance>",
			Short: "Process a single utterance and print the reply",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.ask(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "chat",
			Short: "Start an interactive session",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.chat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "tools",
			Short: "List the operations the assistant can call",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.tools(cmd.OutOrStdout())
			},
		},
	)
	return root
}

func (c *cli) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
		Output:   log.OutputStderr,
	})

	c.app, err = app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	return nil
}

func (c *cli) ask(ctx context.Context, out io.Writer, text string) error {
	reply, err := c.app.Orchestrator.ProcessQuery(ctx, c.sessionID, text)
	if err != nil {
		return err
	}
	if c.showCalls {
		for _, call := range reply.Calls {
			fmt.Fprintf(out, "[%s] %s\n", reply.Source, call)
		}
	}
	fmt.Fprintln(out, reply.Text)
	return nil
}

// chat reads one utterance per line until EOF, "exit" or "quit".
func (c *cli) chat(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, chatBanner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, chatPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := c.ask(ctx, out, line); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (c *cli) tools(out io.Writer) error {
	for _, t := range c.app.Registry.List() {
		fmt.Fprintf(out, "%s\n    %s\n", agent.Signature(t), t.Description())
	}
	return nil
}
