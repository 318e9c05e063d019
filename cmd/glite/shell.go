package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// NewShellCommand returns an interactive loop that reads lines from stdin,
// splits them shell-style (double-quoted substrings stay together), and
// dispatches through the same command tree as the one-shot CLI.
func NewShellCommand(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("glite> ")
			for scanner.Scan() {
				line := scanner.Text()
				parts, err := shlex.Split(line)
				if err != nil {
					fmt.Println("Error:", err)
					fmt.Print("glite> ")
					continue
				}
				if len(parts) > 0 {
					if parts[0] == "exit" || parts[0] == "quit" {
						return nil
					}
					root.SetArgs(parts)
					if err := root.Execute(); err != nil {
						fmt.Println("Error:", err)
					}
				}
				fmt.Print("glite> ")
			}
			return scanner.Err()
		},
	}
	return cmd
}
