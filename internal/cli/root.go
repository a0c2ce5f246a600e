// Package cli wires the codecs into the rfc4648 command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/josephcopenhaver/rfc4648/internal/codec"
)

// App holds the state shared by every subcommand.
type App struct {
	OutWriter io.Writer
	ErrWriter io.Writer
	InReader  io.Reader

	Format string
}

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

// NewRootCommand returns the "rfc4648" command with its subcommands.
func NewRootCommand(version, commit string) *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:          "rfc4648",
		Short:        "Encode and decode base16, base32 and base32hex text",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			_, err := codec.Lookup(a.Format)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&a.Format, "format", "f", codec.Base32,
		"encoding format, one of: "+strings.Join(codec.Names(), ", "))

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
	)

	return root
}

// input returns the positional arguments joined by sep, or all of stdin
// when there are none.
func (a *App) input(args []string, sep string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, sep)), nil
	}

	b, err := io.ReadAll(a.InReader)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	return b, nil
}
