package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/content"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all heuristics",
	Long:  `Shows every heuristic with its index.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println(content.Title)
	fmt.Println()

	width := len(fmt.Sprint(content.Count()))
	for i := 1; i <= content.Count(); i++ {
		h, _ := content.Get(i)
		fmt.Printf("  %*d  %s\n", width, i, firstLine(h.Text, 72))
	}

	fmt.Println()
	fmt.Println("Run 'turtleshell show <index>' to read one.")
}

// firstLine cuts text to n runes.
func firstLine(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n-1]) + "…"
}

// heuristicLabel is a short label for an index.
func heuristicLabel(index int) string {
	if index == 0 {
		return "Home"
	}
	h, ok := content.Get(index)
	if !ok {
		return "?"
	}
	return firstLine(h.Text, 48)
}
