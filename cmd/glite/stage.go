package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
)

func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <owner>/<repo> <path>",
		Short: "Stage a workspace file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			blobID, err := commands.AddFile(rootDir, actor, owner, repo, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("File staged: %s (%s)\n", args[1], blobID[:12])
			return nil
		},
	}
	return cmd
}

func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <owner>/<repo>",
		Short: "Show staged files.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			entries, err := commands.Status(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No staged files.")
				return nil
			}
			fmt.Println("Staged files:")
			for _, entry := range entries {
				fmt.Printf("  %s\n", entry.Path)
			}
			return nil
		},
	}
	return cmd
}

func NewRmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <owner>/<repo> <path>",
		Short: "Unstage a file and delete it from the working tree.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.RemoveFile(rootDir, actor, owner, repo, args[1])
		},
	}
	return cmd
}

func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <owner>/<repo> <path>",
		Short: "Unstage a file, leaving the working tree untouched.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.ResetFile(rootDir, actor, owner, repo, args[1])
		},
	}
	return cmd
}

func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <owner>/<repo>",
		Short: "Show a listing of staged paths.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			out, err := commands.Diff(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	return cmd
}

func NewIgnoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignore <owner>/<repo> <pattern>",
		Short: "Append a pattern to .gliteignore.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.AddIgnorePattern(rootDir, actor, owner, repo, args[1])
		},
	}
	return cmd
}
