package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func ticketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "File and track support tickets",
	}
	cmd.AddCommand(ticketsListCmd(), ticketsOpenCmd(), ticketsUpdateCmd(), ticketsCloseCmd(), ticketsRemoveCmd())
	return cmd
}

func ticketsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tickets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := appCtx.Tickets.FetchAll(cmd.Context())
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "subject", "status", "user", "opened")
			for _, tk := range tickets {
				who := tk.UserID.String()
				if tk.User != nil {
					who = tk.User.Name
				}
				t.AddRow(tk.ID.String(), tk.Subject, printer.Status(string(tk.Status)), who, when(tk.CreatedAt))
			}
			return t.Render()
		},
	}
}

func ticketsOpenCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "open <subject>",
		Short: "Open a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := appCtx.Tickets.Add(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			printer.Success("opened ticket %s", tk.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "what happened")
	return cmd
}

func parseStatus(s string) (domain.TicketStatus, error) {
	switch s {
	case "open", string(domain.TicketOpen):
		return domain.TicketOpen, nil
	case "in-progress", string(domain.TicketInProgress):
		return domain.TicketInProgress, nil
	case "closed", string(domain.TicketClosed):
		return domain.TicketClosed, nil
	}
	return "", fmt.Errorf("unknown status %q: use open, in-progress or closed", s)
}

func ticketsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a ticket; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.TicketPatch{
				Subject:     changedString(cmd, "subject"),
				Description: changedString(cmd, "description"),
			}
			if s := changedString(cmd, "status"); s != nil {
				st, err := parseStatus(*s)
				if err != nil {
					return err
				}
				patch.Status = &st
			}
			tk, err := appCtx.Tickets.Update(cmd.Context(), domain.TicketID(args[0]), patch)
			if err != nil {
				return err
			}
			printer.Success("ticket %s is %s", tk.ID, tk.Status)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("subject", "", "subject")
	f.StringP("description", "d", "", "description")
	f.String("status", "", "open, in-progress or closed")
	return cmd
}

func ticketsCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <id>",
		Short: "Close a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Tickets.Close(cmd.Context(), domain.TicketID(args[0])); err != nil {
				return err
			}
			printer.Success("closed ticket %s", args[0])
			return nil
		},
	}
}

func ticketsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Tickets.Remove(cmd.Context(), domain.TicketID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted ticket %s", args[0])
			return nil
		},
	}
}
