package report

import (
	"os"

	"directions/game"
)

func ExampleReporter_Run() {
	reporter := NewReporter(os.Stdout, nil)
	reporter.Run(
		[]string{"up", "dwn", "Up"},
		[]game.Direction{game.Up{}, game.Left{}},
	)
	// Output:
	// Player moved up
	// Oops! That direction doesn't make sense: dwn
	// Oops! That direction doesn't make sense: Up
	// Player moved UP
	// Player moved LEFT
}
