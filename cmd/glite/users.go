package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

func NewRegisterCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user. The first user becomes admin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := commands.Register(rootDir, lib.NewBcryptCredentials(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered '%s' with role %s.\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for the new user")

	return cmd
}

func NewLoginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Verify a user's credentials.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := commands.Login(rootDir, lib.NewBcryptCredentials(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as '%s' (%s).\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to verify")

	return cmd
}

func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all registered users.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := commands.ListUsers(rootDir)
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Printf("%s (%s)\n", user.Username, user.Role)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "make-admin <username>",
		Short: "Promote a user to admin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.MakeAdmin(rootDir, actor, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-admin <username>",
		Short: "Demote an admin back to a regular user.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RemoveAdmin(rootDir, actor, args[0])
		},
	})

	return cmd
}
