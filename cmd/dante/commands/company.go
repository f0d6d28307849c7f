package commands

import (
	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func companyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Register companies and log in as one",
	}
	cmd.AddCommand(companyRegisterCmd(), companyLoginCmd(), companyListCmd())
	return cmd
}

func companyRegisterCmd() *cobra.Command {
	var reg domain.CompanyRegistration
	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Register a new company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg.Name = args[0]
			c, err := appCtx.Auth.RegisterCompany(cmd.Context(), reg)
			if err != nil {
				return err
			}
			printer.Success("registered %s (%s)", c.Name, c.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&reg.Email, "email", "", "login email")
	f.StringVar(&reg.Password, "password", "", "login password")
	f.StringVar(&reg.Phone, "phone", "", "phone number")
	f.StringVar(&reg.CompanyName, "legal-name", "", "legal company name")
	f.StringVar(&reg.RIF, "rif", "", "tax id (RIF)")
	f.StringVar(&reg.Address, "address", "", "address")
	return cmd
}

func companyLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Auth.LoginCompany(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			printer.Success("logged in as %s", c.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "company email")
	cmd.Flags().StringVar(&password, "password", "", "company password")
	return cmd
}

func companyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := appCtx.API.ListCompanies(cmd.Context())
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "name", "email", "rif")
			for _, c := range companies {
				t.AddRow(c.ID.String(), c.Name, c.Email, c.RIF)
			}
			return t.Render()
		},
	}
}
