package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
)

func NewCommitCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit <owner>/<repo>",
		Short: "Commit the staged index on the current branch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			commit, err := commands.Commit(rootDir, actor, owner, repo, message)
			if err != nil {
				return err
			}
			fmt.Printf("[%s] %s %s\n", commit.Branch, commit.ID[:12], commit.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.MarkFlagRequired("message")

	return cmd
}

func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <owner>/<repo> [branch]",
		Short: "Show the commit history of a branch, newest first.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			branch := "main"
			if len(args) > 1 {
				branch = args[1]
			}
			commits, err := commands.History(rootDir, actor, owner, repo, branch, limit)
			if err != nil {
				return err
			}
			for _, commit := range commits {
				fmt.Printf("%s %s %s %s\n", commit.ID[:12], commit.Timestamp, commit.Author, commit.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of commits to show")

	return cmd
}

func NewRevertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revert <owner>/<repo> <commit>",
		Short: "Create a commit that undoes the given commit.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			commit, err := commands.Revert(rootDir, actor, owner, repo, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("[%s] %s %s\n", commit.Branch, commit.ID[:12], commit.Message)
			return nil
		},
	}
	return cmd
}
