package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/servicedesk/service-desk/internal/core/domain"
	"github.com/servicedesk/service-desk/internal/core/ports"
	"github.com/servicedesk/service-desk/internal/core/service"
	"github.com/servicedesk/service-desk/pkg/logger"
)

// demoAccounts are recreated by seed on every run.
var demoAccounts = []ports.NewUserInput{
	{Username: "admin", Password: "admin12345", IsSuperuser: true},
	{Username: "tech1", Password: "tech12345", Groups: []string{domain.GroupTech}},
	{Username: "employee1", Password: "emp12345"},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the demo accounts admin, tech1 and employee1",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(cmd, func(users ports.UserService) error {
			for _, in := range demoAccounts {
				u, err := users.Recreate(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("seed %s: %w", in.Username, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", u.Username, u.Role)
			}
			return nil
		})
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var newUser ports.NewUserInput

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(cmd, func(users ports.UserService) error {
			u, err := users.Create(cmd.Context(), newUser)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) id=%s\n", u.Username, u.Role, u.ID)
			return nil
		})
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an account and its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(cmd, func(users ports.UserService) error {
			if err := users.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUsers(cmd, func(users ports.UserService) error {
			list, err := users.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tCREATED")
			for _, u := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Role, u.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		})
	},
}

func init() {
	userAddCmd.Flags().StringVar(&newUser.Username, "username", "", "login name")
	userAddCmd.Flags().StringVar(&newUser.Password, "password", "", "initial password")
	userAddCmd.Flags().BoolVar(&newUser.IsSuperuser, "superuser", false, "grant the admin role")
	userAddCmd.Flags().BoolVar(&newUser.IsStaff, "staff", false, "grant the admin role")
	userAddCmd.Flags().StringSliceVar(&newUser.Groups, "group", nil, "group membership, e.g. Tech (repeatable)")
	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd, userDeleteCmd, userListCmd)
}

func withUsers(cmd *cobra.Command, fn func(ports.UserService) error) error {
	st, err := openStores(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer st.close()
	return fn(service.NewUserService(st.users, st.incidents, st.messages, logger.Get()))
}
