package cli

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	providerType string
	sessionID    string
	userID       string
	offline      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "myhome",
	Short: "AI real estate assistant",
	Long: `MyHome is a conversational real estate assistant. It searches listings,
presents them with pros and cons, refines searches from your feedback and
keeps a favorites shortlist across sessions.`,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&providerType, "provider", "", "llm provider override (google, openai, ollama, stub)")

	chatCmd.Flags().StringVar(&sessionID, "session", "", "session id to resume (default: a new session)")
	chatCmd.Flags().StringVar(&userID, "user", "", "user id for favorites and preferences")
	chatCmd.Flags().BoolVar(&offline, "offline", false, "keep favorites in memory instead of MongoDB")

	RootCmd.AddCommand(chatCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
