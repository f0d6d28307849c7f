package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message...>",
		Short: "Ask the assistant about your company's data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := appCtx.Chat.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printer.Print("%s", reply)
			return nil
		},
	}
}
