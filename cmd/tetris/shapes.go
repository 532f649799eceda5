package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MrBanana2045/Teteis/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece table and palette",
	Long: `Prints every piece template in spawn orientation followed by its
clockwise rotations, and the colors a piece can be drawn in.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func runShapes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	nameStyle := lipgloss.NewStyle().Bold(true)

	for i, tmpl := range tetris.Templates {
		fmt.Fprintf(out, "%d %s\n", i, nameStyle.Render(tmpl.Name))

		s := tmpl.Shape()
		views := make([]string, 0, 4)
		for range 4 {
			views = append(views, s.String())
			s = s.Rotated()
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, pad(views)...))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Palette:")
	for i, c := range tetris.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI())).Render("██")
		fmt.Fprintf(out, "%d %s %s\n", i, swatch, c)
	}
}

// pad adds a gap after each block so rotations line up in columns.
func pad(blocks []string) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		lines := strings.Split(b, "\n")
		for j := range lines {
			lines[j] += "   "
		}
		out[i] = strings.Join(lines, "\n")
	}
	return out
}
