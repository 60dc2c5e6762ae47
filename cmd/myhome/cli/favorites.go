package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/config"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
)

// favoritesCmd reads straight from the favorites store; no provider, no
// session.
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Show saved favorites without starting a chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Verbose = true
		}
		obs := newObserver(cfg.Logging)

		favStore := newFavoritesStore(ctx, cfg.Mongo, obs)
		defer favStore.Close(ctx)

		uid := userID
		if uid == "" {
			uid = cfg.Agent.DefaultUserID
		}

		records, err := favStore.ListFavorites(ctx, uid)
		if err != nil {
			return err
		}
		fmt.Println(favorites.FormatSummary(records))
		return nil
	},
}

func init() {
	favoritesCmd.Flags().StringVar(&userID, "user", "", "user id to list favorites for")
	RootCmd.AddCommand(favoritesCmd)
}
