package commands

import (
	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored company, user, token and caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Logout.LogoutAll()
			printer.Success("logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored session belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c, ok := appCtx.Companies.Company(); ok {
				printer.Print("company: %s (%s)", c.Name, c.ID)
			} else {
				printer.Print("company: -")
			}
			if u, ok := appCtx.Users.User(); ok {
				printer.Print("user:    %s <%s> %s", u.Name, u.Email, u.Role)
			} else {
				printer.Print("user:    -")
			}
			if appCtx.Session.IsAuthenticated() {
				printer.Print("token:   present")
			} else {
				printer.Print("token:   -")
			}
			return nil
		},
	}
}
