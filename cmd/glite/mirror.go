package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
)

func NewPushCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <owner>/<repo>",
		Short: "Replace the repository's mirror with the local state.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			if err := commands.Push(rootDir, actor, owner, repo); err != nil {
				return err
			}
			fmt.Println("Pushed to remote.")
			return nil
		},
	}
	return cmd
}

func NewPullCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <owner>/<repo>",
		Short: "Overwrite the local state from the repository's mirror.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			if err := commands.Pull(rootDir, actor, owner, repo); err != nil {
				return err
			}
			fmt.Println("Pulled from remote.")
			return nil
		},
	}
	return cmd
}

func NewForkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fork <owner>/<repo>",
		Short: "Copy a readable repository into your own namespace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			name, err := commands.Fork(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			fmt.Printf("Forked '%s/%s' to '%s/%s'.\n", owner, repo, actor, name)
			return nil
		},
	}
	return cmd
}

func NewTransferCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer <owner>/<repo> <new-owner>",
		Short: "Move a repository to another user's namespace.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			if err := commands.Transfer(rootDir, actor, owner, repo, args[1]); err != nil {
				return err
			}
			fmt.Printf("Repository transferred to '%s'.\n", args[1])
			return nil
		},
	}
	return cmd
}
