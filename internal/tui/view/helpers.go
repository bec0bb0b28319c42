package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PadLinesWithBackground pads content to width/height, filling the
// slack with the background color so the whole screen paints evenly.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		if slack := width - lipgloss.Width(line); slack > 0 {
			lines[i] = line + fill.Render(strings.Repeat(" ", slack))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay splices the modal over the base content, centered
// both ways. Base rows outside the modal pass through untouched; rows
// under it are cut at the modal's edges so their styling survives on
// either side.
func RenderModalOverlay(baseContent, modalContent string, width, height int, modalBg lipgloss.Color) string {
	modal, modalWidth := normalizeModalLines(modalContent, width, modalBg)
	if modalWidth == 0 {
		return baseContent
	}

	top := max(0, (height-len(modal))/2)
	left := max(0, (width-modalWidth)/2)

	base := strings.Split(PadLinesWithBackground(baseContent, width, height, lipgloss.Color("")), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	out := make([]string, height)
	for row := 0; row < height; row++ {
		mi := row - top
		if mi < 0 || mi >= len(modal) {
			out[row] = base[row]
			continue
		}
		out[row] = ansi.Cut(base[row], 0, left) + modal[mi] + ansi.Cut(base[row], left+modalWidth, width)
	}
	return strings.Join(out, "\n")
}

// normalizeModalLines pads every modal line to the block width, clamps
// the block to the screen, and re-arms the modal background after any
// reset sequence so the base content's styling cannot bleed through.
func normalizeModalLines(modalContent string, maxWidth int, modalBg lipgloss.Color) ([]string, int) {
	lines := strings.Split(modalContent, "\n")

	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	if width == 0 {
		return nil, 0
	}
	if width > maxWidth {
		width = maxWidth
	}

	fill := lipgloss.NewStyle().Background(modalBg)
	bgSeq := ModalBackgroundSeq(modalBg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w > width {
			line = ansi.Cut(line, 0, width)
		} else if w < width {
			line += fill.Render(strings.Repeat(" ", width-w))
		}
		lines[i] = rearmBackground(line, bgSeq) + ansi.ResetStyle
	}
	return lines, width
}

// rearmBackground re-applies the background sequence after every reset
// inside the line.
func rearmBackground(line, bgSeq string) string {
	if bgSeq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

// ModalBackgroundSeq is the raw SGR background sequence for the modal
// color, empty when no color is set.
func ModalBackgroundSeq(modalBg lipgloss.Color) string {
	if modalBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(modalBg))).String()
}
