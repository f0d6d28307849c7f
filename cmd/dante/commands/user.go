package commands

import (
	"github.com/spf13/cobra"

	"dante/internal/domain"
	"dante/internal/output"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Log in as a user and manage the company's users",
	}
	cmd.AddCommand(
		userLoginCmd(),
		userListCmd(),
		userCreateCmd(),
		userUpdateCmd(),
		userDeleteCmd(),
		userPasswdCmd(),
		userAvatarCmd(),
		userMeCmd(),
	)
	return cmd
}

func userLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := appCtx.Auth.LoginUser(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			printer.Success("logged in as %s (%s)", u.Name, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "user password")
	return cmd
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the company's users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appCtx.People.FetchAll(cmd.Context())
			if err != nil {
				return err
			}
			t := output.NewTable(printer.Out(), "id", "name", "email", "role", "job title", "status")
			for _, u := range users {
				t.AddRow(u.ID.String(), u.Name, u.Email, string(u.Role), u.JobTitle, printer.Status(yesNo(u.IsActive)))
			}
			return t.Render()
		},
	}
}

func userCreateCmd() *cobra.Command {
	var in domain.NewUser
	var role, avatar string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a user in the current company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			in.Role = domain.Role(role)
			att, err := readAttachment(avatar)
			if err != nil {
				return err
			}
			u, err := appCtx.People.Add(cmd.Context(), in, att)
			if err != nil {
				return err
			}
			printer.Success("created user %s (%s)", u.Name, u.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "email")
	f.StringVar(&in.Password, "password", "", "initial password")
	f.StringVar(&role, "role", "", "Usuario, Soporte, Operador, Propietario or Programador")
	f.StringVar(&in.Phone, "phone", "", "phone")
	f.StringVar(&in.JobTitle, "job-title", "", "job title")
	f.StringVar(&in.Gender, "gender", "", "gender")
	f.StringVar(&in.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&avatar, "avatar", "", "avatar image file")
	return cmd
}

func userUpdateCmd() *cobra.Command {
	var avatar string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user; only the flags given are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.UserPatch{
				Name:       changedString(cmd, "name"),
				Email:      changedString(cmd, "email"),
				Phone:      changedString(cmd, "phone"),
				JobTitle:   changedString(cmd, "job-title"),
				Gender:     changedString(cmd, "gender"),
				BirthDate:  changedString(cmd, "birth-date"),
				Password:   changedString(cmd, "password"),
				IsActive:   changedBool(cmd, "active"),
				IsVerified: changedBool(cmd, "verified"),
			}
			if r := changedString(cmd, "role"); r != nil {
				role := domain.Role(*r)
				patch.Role = &role
			}
			att, err := readAttachment(avatar)
			if err != nil {
				return err
			}
			u, err := appCtx.People.Update(cmd.Context(), domain.UserID(args[0]), patch, att)
			if err != nil {
				return err
			}
			printer.Success("updated user %s", u.Name)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("name", "", "name")
	f.String("email", "", "email")
	f.String("role", "", "role")
	f.String("phone", "", "phone")
	f.String("job-title", "", "job title")
	f.String("gender", "", "gender")
	f.String("birth-date", "", "birth date (YYYY-MM-DD)")
	f.String("password", "", "new password")
	f.Bool("active", true, "account is active")
	f.Bool("verified", false, "account is verified")
	f.StringVar(&avatar, "avatar", "", "avatar image file")
	return cmd
}

func userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and the messages they sent or received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.People.Remove(cmd.Context(), domain.UserID(args[0])); err != nil {
				return err
			}
			printer.Success("deleted user %s", args[0])
			return nil
		},
	}
}

func userPasswdCmd() *cobra.Command {
	var current, next string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the logged-in user's password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.People.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			printer.Success("password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	return cmd
}

func userAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <image>",
		Short: "Replace the logged-in user's avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			att, err := readAttachment(args[0])
			if err != nil {
				return err
			}
			u, err := appCtx.People.UpdateAvatar(cmd.Context(), *att)
			if err != nil {
				return err
			}
			printer.Success("avatar updated: %s", u.AvatarURL)
			return nil
		},
	}
}

func userMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := appCtx.People.Me()
			if !ok {
				return domain.ErrNotAuthenticated
			}
			printer.Header(u.Name)
			printer.Print("id:        %s", u.ID)
			printer.Print("email:     %s", u.Email)
			printer.Print("role:      %s", u.Role)
			printer.Print("job title: %s", u.JobTitle)
			printer.Print("phone:     %s", u.Phone)
			if u.Company != nil {
				printer.Print("company:   %s", u.Company.Name)
			}
			return nil
		},
	}
}
