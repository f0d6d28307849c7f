package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the inventory",
	}
	cmd.AddCommand(productsListCmd(), productsShowCmd(), productsAddCmd(), productsUpdateCmd(), productsRemoveCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				products []domain.Product
				err      error
			)
			if category != "" {
				products, err = appCtx.Products.FetchByCategory(cmd.Context(), domain.CategoryID(category))
			} else {
				products, err = appCtx.Products.FetchAll(cmd.Context())
			}
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "name", "price", "stock", "category", "status")
			for _, p := range products {
				t.AddRow(p.ID.String(), p.Name, money(p.Price), strconv.Itoa(p.Stock), p.CategoryID.String(), printer.Status(yesNo(p.IsActive)))
			}
			return t.Render()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only products in this inventory group")
	return cmd
}

func productsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Products.Get(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return err
			}
			printer.Header(p.Name)
			printer.Print("id:          %s", p.ID)
			printer.Print("description: %s", p.Description)
			printer.Print("price:       %s", money(p.Price))
			printer.Print("stock:       %d", p.Stock)
			printer.Print("category:    %s", p.CategoryID)
			printer.Print("image:       %s", p.Image)
			printer.Print("updated:     %s", when(p.UpdatedAt))
			return nil
		},
	}
}

func productsAddCmd() *cobra.Command {
	var in domain.NewProduct
	var category, image string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			in.CategoryID = domain.CategoryID(category)
			att, err := readAttachment(image)
			if err != nil {
				return err
			}
			p, err := appCtx.Products.Add(cmd.Context(), in, att)
			if err != nil {
				return err
			}
			printer.Success("added product %s (%s)", p.Name, p.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Description, "description", "", "description")
	f.Float64Var(&in.Price, "price", 0, "unit price")
	f.IntVar(&in.Stock, "stock", 0, "units in stock")
	f.StringVar(&category, "category", "", "inventory group id")
	f.StringVar(&image, "image", "", "product image file")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func productsUpdateCmd() *cobra.Command {
	var image string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.ProductPatch{
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
				Price:       changedFloat(cmd, "price"),
				Stock:       changedInt(cmd, "stock"),
				IsActive:    changedBool(cmd, "active"),
			}
			if c := changedString(cmd, "category"); c != nil {
				id := domain.CategoryID(*c)
				patch.CategoryID = &id
			}
			att, err := readAttachment(image)
			if err != nil {
				return err
			}
			p, err := appCtx.Products.Update(cmd.Context(), domain.ProductID(args[0]), patch, att)
			if err != nil {
				return err
			}
			printer.Success("updated product %s", p.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("name", "", "name")
	f.String("description", "", "description")
	f.Float64("price", 0, "unit price")
	f.Int("stock", 0, "units in stock")
	f.String("category", "", "inventory group id")
	f.Bool("active", true, "product is active")
	f.StringVar(&image, "image", "", "product image file")
	return cmd
}

func productsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Products.Remove(cmd.Context(), domain.ProductID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted product %s", args[0])
			return nil
		},
	}
}
