package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
)

func NewBranchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Manage branches.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <owner>/<repo> <name>",
		Short: "Create a branch rooted at the current head.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.CreateBranch(rootDir, actor, owner, repo, args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list <owner>/<repo>",
		Short: "List branches with their heads.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			branches, err := commands.ListBranches(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			current, err := commands.CurrentBranch(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			for _, branch := range branches {
				marker := " "
				if branch.Name == current {
					marker = "*"
				}
				head := branch.Head
				if head == "" {
					head = "(no commits)"
				}
				fmt.Printf("%s %s -> %s\n", marker, branch.Name, head)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <owner>/<repo> <old> <new>",
		Short: "Rename a branch.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.RenameBranch(rootDir, actor, owner, repo, args[1], args[2])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <owner>/<repo> <name>",
		Short: "Delete a branch other than the current one.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.DeleteBranch(rootDir, actor, owner, repo, args[1])
		},
	})

	return cmd
}

func NewSwitchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch <owner>/<repo> <branch>",
		Short: "Point HEAD at another branch. The working tree is not touched.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.SwitchBranch(rootDir, actor, owner, repo, args[1])
		},
	}
	return cmd
}

func NewMergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <owner>/<repo> <branch>",
		Short: "Merge a branch into the current one (takes the other branch's files).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			commit, err := commands.MergeBranch(rootDir, actor, owner, repo, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("[%s] %s %s\n", commit.Branch, commit.ID[:12], commit.Message)
			return nil
		},
	}
	return cmd
}

func NewRebaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebase <owner>/<repo> <branch>",
		Short: "Reset the current branch's head to another branch's head.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.RebaseBranch(rootDir, actor, owner, repo, args[1])
		},
	}
	return cmd
}

func NewTagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <owner>/<repo> <name>",
		Short: "Freeze the current head under a tag name.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.CreateTag(rootDir, actor, owner, repo, args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list <owner>/<repo>",
		Short: "List tags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			tags, err := commands.ListTags(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	})

	return cmd
}
