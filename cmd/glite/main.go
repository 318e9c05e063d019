package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootDir and actor hold the --root and --user persistent flags: the
// workspace root on disk and the acting username.
var (
	rootDir string
	actor   string
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(log.WarnLevel)

	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "glite",
		Short: "A local, multi-user version-control system.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "storage", "Workspace root directory")
	rootCmd.PersistentFlags().StringVarP(&actor, "user", "u", "", "Acting username")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(NewRegisterCommand())
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewUsersCommand())
	rootCmd.AddCommand(NewRepoCommand())
	rootCmd.AddCommand(NewPermCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewRmCommand())
	rootCmd.AddCommand(NewResetCommand())
	rootCmd.AddCommand(NewDiffCommand())
	rootCmd.AddCommand(NewIgnoreCommand())
	rootCmd.AddCommand(NewCommitCommand())
	rootCmd.AddCommand(NewBranchCommand())
	rootCmd.AddCommand(NewSwitchCommand())
	rootCmd.AddCommand(NewMergeCommand())
	rootCmd.AddCommand(NewRebaseCommand())
	rootCmd.AddCommand(NewTagCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewRevertCommand())
	rootCmd.AddCommand(NewPushCommand())
	rootCmd.AddCommand(NewPullCommand())
	rootCmd.AddCommand(NewForkCommand())
	rootCmd.AddCommand(NewTransferCommand())
	rootCmd.AddCommand(NewShellCommand(rootCmd))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// splitRepoArg parses an "<owner>/<repo>" argument, defaulting the owner to
// the acting user when no slash is present.
func splitRepoArg(arg string) (string, string) {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '/' {
			return arg[:i], arg[i+1:]
		}
	}
	return actor, arg
}
