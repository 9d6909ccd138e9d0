package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphkind/internal/codec"
)

func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <file>",
		Short: "Print the adjacency matrix of a graph (tab-separated, inf = no edge)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("loading", "input", args[0])

			g, err := codec.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}
