package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gremm-arcade/internal/registry"
)

var styleHeader = color.Style{color.FgCyan, color.OpBold}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its player count.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Println(styleHeader.Sprintf("  %-*s  %-7s  %s", idW, "ID", "Players", "Title"))
	fmt.Printf("  %s  %s  %s\n", strings.Repeat("-", idW), strings.Repeat("-", 7), strings.Repeat("-", 5))
	for _, g := range games {
		players := "1"
		if g.Players > 1 {
			players = fmt.Sprintf("%d hotseat", g.Players)
		}
		fmt.Printf("  %-*s  %-7s  %s\n", idW, g.ID, players, g.Title)
	}

	fmt.Println()
	fmt.Println(styleDim.Sprint("Run 'arcade play <id>' to play a game."))
}
