package commands

import (
	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func clientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage the company's clients",
	}
	cmd.AddCommand(clientsListCmd(), clientsAddCmd(), clientsUpdateCmd(), clientsRemoveCmd())
	return cmd
}

func clientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := appCtx.Clients.FetchAll(cmd.Context())
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "name", "email", "phone", "document", "status")
			for _, c := range clients {
				t.AddRow(c.ID.String(), c.Name, c.Email, c.Phone, c.DocumentType+" "+c.DocumentNumber, printer.Status(yesNo(c.IsActive)))
			}
			return t.Render()
		},
	}
}

func clientsAddCmd() *cobra.Command {
	var in domain.NewClient
	var category, avatar string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			in.CategoryID = domain.CategoryID(category)
			att, err := readAttachment(avatar)
			if err != nil {
				return err
			}
			c, err := appCtx.Clients.Add(cmd.Context(), in, att)
			if err != nil {
				return err
			}
			printer.Success("added client %s (%s)", c.Name, c.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "email")
	f.StringVar(&in.Phone, "phone", "", "phone")
	f.StringVar(&in.Address, "address", "", "address")
	f.StringVar(&in.DocumentType, "document-type", "", "document type (e.g. V, J, E)")
	f.StringVar(&in.DocumentNumber, "document-number", "", "document number")
	f.StringVar(&category, "category", "", "client group id")
	f.StringVar(&avatar, "avatar", "", "avatar image file")
	return cmd
}

func clientsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.ClientPatch{
				Name:           changedString(cmd, "name"),
				Email:          changedString(cmd, "email"),
				Phone:          changedString(cmd, "phone"),
				Address:        changedString(cmd, "address"),
				DocumentType:   changedString(cmd, "document-type"),
				DocumentNumber: changedString(cmd, "document-number"),
				IsActive:       changedBool(cmd, "active"),
			}
			if c := changedString(cmd, "category"); c != nil {
				id := domain.CategoryID(*c)
				patch.CategoryID = &id
			}
			c, err := appCtx.Clients.Update(cmd.Context(), domain.ClientID(args[0]), patch)
			if err != nil {
				return err
			}
			printer.Success("updated client %s", c.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("name", "", "name")
	f.String("email", "", "email")
	f.String("phone", "", "phone")
	f.String("address", "", "address")
	f.String("document-type", "", "document type")
	f.String("document-number", "", "document number")
	f.String("category", "", "client group id")
	f.Bool("active", true, "client is active")
	return cmd
}

func clientsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Clients.Remove(cmd.Context(), domain.ClientID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted client %s", args[0])
			return nil
		},
	}
}
