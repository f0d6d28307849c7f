package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func parseKind(s string) (domain.CategoryKind, error) {
	switch s {
	case "", "all":
		return domain.AnyCategoryKind, nil
	case "clients", "1":
		return domain.ClientGroup, nil
	case "inventory", "2":
		return domain.InventoryGroup, nil
	}
	return 0, fmt.Errorf("unknown category kind %q: use clients or inventory", s)
}

func kindName(k domain.CategoryKind) string {
	switch k {
	case domain.ClientGroup:
		return "clients"
	case domain.InventoryGroup:
		return "inventory"
	}
	return "-"
}

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage client groups and inventory groups",
	}
	cmd.AddCommand(categoriesListCmd(), categoriesAddCmd(), categoriesUpdateCmd(), categoriesRemoveCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			cats, err := appCtx.Categories.FetchAll(cmd.Context(), k)
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "name", "kind", "description")
			for _, c := range cats {
				t.AddRow(c.ID.String(), c.Name, kindName(c.Kind), c.Description)
			}
			return t.Render()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "all", "clients, inventory or all")
	return cmd
}

func categoriesAddCmd() *cobra.Command {
	var in domain.NewCategory
	var kind, image string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			in.Name = args[0]
			in.Kind = k
			att, err := readAttachment(image)
			if err != nil {
				return err
			}
			c, err := appCtx.Categories.Add(cmd.Context(), in, att)
			if err != nil {
				return err
			}
			printer.Success("added category %s (%s)", c.Name, c.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "inventory", "clients or inventory")
	f.StringVar(&in.Description, "description", "", "description")
	f.StringVar(&image, "image", "", "image file (png, jpg, jpeg or gif)")
	return cmd
}

func categoriesUpdateCmd() *cobra.Command {
	var image string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			att, err := readAttachment(image)
			if err != nil {
				return err
			}
			c, err := appCtx.Categories.Update(cmd.Context(), domain.CategoryID(args[0]), domain.CategoryPatch{
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
			}, att)
			if err != nil {
				return err
			}
			printer.Success("updated category %s", c.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("name", "", "name")
	f.String("description", "", "description")
	f.StringVar(&image, "image", "", "image file")
	return cmd
}

func categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Categories.Remove(cmd.Context(), domain.CategoryID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted category %s", args[0])
			return nil
		},
	}
}
