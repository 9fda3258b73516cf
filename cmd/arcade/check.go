package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gremm-arcade/internal/games/tunnel/levels"
	"github.com/vovakirdan/gremm-arcade/internal/logging"
)

var (
	styleOK   = color.Style{color.FgGreen, color.OpBold}
	styleFail = color.Style{color.FgRed, color.OpBold}
	styleWarn = color.Style{color.FgYellow}
	styleDim  = color.Style{color.FgGray}
)

var checkCmd = &cobra.Command{
	Use:   "check [layout]",
	Short: "Validate tunnel layouts",
	Long: `Loads tunnel layouts and reports the ones that fail to parse or validate.

Without an argument every layout under --assets (or the bundled set) is
checked. Layouts that load but strand travelers behind a missing door are
reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader := levels.ForRoot(flagAssets)

	// Without --log the report goes to the terminal, so errors do too.
	checkLog := logger
	if flagLog == "" {
		checkLog = logging.New(os.Stderr, "check")
	}

	var names []string
	if len(args) == 1 {
		names = args
	} else {
		found, err := loader.List()
		if err != nil {
			return fmt.Errorf("list layouts: %w", err)
		}
		names = found
	}
	if len(names) == 0 {
		fmt.Println("No layouts found.")
		return nil
	}

	failed := 0
	for _, name := range names {
		layout, err := loader.Load(name)
		if err != nil {
			failed++
			fmt.Printf("%s %s\n", styleFail.Sprint("FAIL"), name)
			checkLog.Error("layout rejected", "layout", name, "err", err)
			continue
		}

		exits := 0
		for _, room := range layout.Rooms() {
			exits += len(room.Exits)
		}
		fmt.Printf("%s %s %s\n", styleOK.Sprint("OK  "), name,
			styleDim.Sprintf("(%d rooms, %d exits, start %s)", len(layout.Rooms()), exits, layout.Start().Name))

		for _, w := range levels.Lint(layout) {
			fmt.Printf("     %s %s\n", styleWarn.Sprint("warning:"), w)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d layouts failed", failed, len(names))
	}
	return nil
}
