package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
)

func NewRepoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a repository under your own namespace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.CreateRepo(rootDir, actor, args[0]); err != nil {
				return err
			}
			fmt.Printf("Repository '%s' created.\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <owner>/<repo>",
		Short: "Delete a repository.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.DeleteRepo(rootDir, actor, owner, repo)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list [username]",
		Short: "List a user's repositories (defaults to your own).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := actor
			if len(args) > 0 {
				username = args[0]
			}
			repos, err := commands.ListRepos(rootDir, username)
			if err != nil {
				return err
			}
			for _, repo := range repos {
				fmt.Printf("%s [%s]\n", repo.Name, repo.Visibility)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list-all",
		Short: "List every repository in the workspace.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, err := commands.ListAllRepos(rootDir)
			if err != nil {
				return err
			}
			for _, repo := range repos {
				fmt.Printf("%s/%s\n", repo.Owner, repo.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "view <owner>/<repo>",
		Short: "Show a repository's config, branches and tags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			info, err := commands.ViewRepo(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			fmt.Printf("%s/%s [%s] created %s\n", info.Config.Owner, info.Config.Name, info.Config.Visibility, info.Config.Created)
			for _, branch := range info.Branches {
				head := branch.Head
				if head == "" {
					head = "(no commits)"
				}
				fmt.Printf("  branch %s -> %s\n", branch.Name, head)
			}
			for _, tag := range info.Tags {
				fmt.Printf("  tag %s\n", tag)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "visibility <owner>/<repo> <public|private>",
		Short: "Change a repository's visibility.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.SetRepoVisibility(rootDir, actor, owner, repo, args[1] == "public")
		},
	})

	return cmd
}

func NewPermCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perm",
		Short: "Manage collaborator permissions.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <owner>/<repo> <username>",
		Short: "Grant collaborator access.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.AddCollaborator(rootDir, actor, owner, repo, args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <owner>/<repo> <username>",
		Short: "Revoke collaborator access.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			return commands.RemoveCollaborator(rootDir, actor, owner, repo, args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list <owner>/<repo>",
		Short: "List collaborators.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepoArg(args[0])
			names, err := commands.ListCollaborators(rootDir, actor, owner, repo)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	})

	return cmd
}
