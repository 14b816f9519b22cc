package track_gen

import "fmt"

// ShowCycle prints the track to the console, for visual reference while
// iterating on generation parameters: 'o' for track cells, '.' for
// background. Row zero prints first, matching the serialized tile order.
func ShowCycle(width, height int, cycle Cycle) {
	on := make(map[GridCell]bool, len(cycle))
	for _, cell := range cycle {
		on[cell] = true
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if on[GridCell{x, y}] {
				fmt.Print("o ")
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
