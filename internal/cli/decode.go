package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephcopenhaver/rfc4648/internal/codec"
)

func newDecodeCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decode text, or stdin when no text is given",
		Long: "Decode text, or stdin when no text is given.\n\n" +
			"Positional arguments are concatenated. Surrounding whitespace is ignored.\n" +
			"The decoded bytes are written to stdout as-is.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.Lookup(a.Format)
			if err != nil {
				return err
			}

			src, err := a.input(args, "")
			if err != nil {
				return err
			}

			b, err := c.DecodeString(strings.TrimSpace(string(src)))
			if err != nil {
				return fmt.Errorf("unable to decode %s: %w", a.Format, err)
			}

			_, err = a.OutWriter.Write(b)
			return err
		},
	}
}
