package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephcopenhaver/rfc4648/internal/codec"
)

func newEncodeCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text, or stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.Lookup(a.Format)
			if err != nil {
				return err
			}

			src, err := a.input(args, " ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.OutWriter, c.EncodeToString(src))
			return err
		},
	}
}
