package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpress/pkg/card"
)

// newGamesCmd creates the games command that lists the games of a running
// server, most recently edited first.
func newGamesCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List games on a running cardpress server",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := fetchGames(addr)
			if err != nil {
				return err
			}
			if len(games) == 0 {
				printInfo("no games yet")
				return nil
			}

			for _, g := range games {
				printGame(g)
			}
			printNewline()
			printDetail("%d game(s)", len(games))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "server base URL")
	return cmd
}

func fetchGames(addr string) ([]card.Game, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(addr + "/api/games")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var games []card.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, err
	}
	return games, nil
}

func printGame(g card.Game) {
	title := StyleTitle.Render(g.Title)
	meta := StyleDim.Render(fmt.Sprintf("#%d · updated %s", g.ID, g.UpdatedAt.Format("2006-01-02 15:04")))
	fmt.Println(title + "  " + meta)
	if g.Description != "" {
		printDetail("%s", g.Description)
	}
}
