package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/muesli/termenv"
)

var diskPalette = []string{
	"#f87171", "#fb923c", "#facc15", "#4ade80",
	"#22d3ee", "#818cf8", "#c084fc", "#f472b6",
}

// BoardRenderer draws a snapshot as towers followed by the rod listing.
type BoardRenderer struct {
	profile termenv.Profile
	towers  bool
}

// NewBoardRenderer creates a renderer. With towers false only the listing is drawn.
func NewBoardRenderer(p termenv.Profile, towers bool) *BoardRenderer {
	return &BoardRenderer{profile: p, towers: towers}
}

// Render draws the board.
func (b *BoardRenderer) Render(snap domain.Snapshot) string {
	var sb strings.Builder
	if b.towers && snap.Disks > 0 {
		b.drawTowers(&sb, snap)
		sb.WriteString("\n")
	}
	WriteListing(&sb, snap)
	return sb.String()
}

func (b *BoardRenderer) drawTowers(sb *strings.Builder, snap domain.Snapshot) {
	half := snap.Disks
	width := 2*half + 1

	for row := snap.Disks - 1; row >= 0; row-- {
		cells := make([]string, 0, len(snap.Rods))
		for _, rod := range snap.Rods {
			if row < len(rod.Disks) {
				cells = append(cells, b.disk(rod.Disks[row], half))
			} else {
				cells = append(cells, pad(half)+"|"+pad(half))
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("-", len(snap.Rods)*(width+1)-1))
	sb.WriteString("\n")

	labels := make([]string, 0, len(snap.Rods))
	for _, rod := range snap.Rods {
		labels = append(labels, pad(half)+rod.ID.String()+pad(half))
	}
	sb.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))
	sb.WriteString("\n")
}

func (b *BoardRenderer) disk(size, half int) string {
	bar := strings.Repeat("=", size)
	color := diskPalette[(size-1)%len(diskPalette)]
	styled := b.profile.String(bar + "|" + bar).Foreground(b.profile.Color(color)).String()
	return pad(half-size) + styled + pad(half-size)
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}

// WriteListing writes one line per rod ("A: 3,2,1", "B: -") and the move count.
func WriteListing(sb *strings.Builder, snap domain.Snapshot) {
	sb.WriteString("Rods:\n")
	for _, rod := range snap.Rods {
		fmt.Fprintf(sb, "%s: %s\n", rod.ID, formatDisks(rod.Disks))
	}
	fmt.Fprintf(sb, "Moves: %d\n", snap.Moves)
}

func formatDisks(disks []int) string {
	if len(disks) == 0 {
		return "-"
	}
	parts := make([]string, len(disks))
	for i, d := range disks {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, ",")
}
