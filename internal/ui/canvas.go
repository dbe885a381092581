package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// canvas is a fixed grid of styled cells. Items are drawn at arbitrary
// positions while they animate, so the dock is composed cell by cell and
// only turned into styled strings at the end.
type canvas struct {
	width, height int
	cells         []canvasCell
	styles        []lipgloss.Style
}

type canvasCell struct {
	r     rune
	style int
	// wide marks the cell covered by the right half of a double-width rune.
	wide bool
}

// newCanvas returns a canvas filled with spaces in base.
func newCanvas(width, height int, base lipgloss.Style) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &canvas{
		width:  width,
		height: height,
		cells:  make([]canvasCell, width*height),
		styles: []lipgloss.Style{base},
	}
	for i := range c.cells {
		c.cells[i] = canvasCell{r: ' '}
	}
	return c
}

// style registers s and returns its index for fill and text.
func (c *canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) at(x, y int) *canvasCell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// fill paints n blank cells starting at x, y.
func (c *canvas) fill(x, y, n, style int) {
	for i := 0; i < n; i++ {
		if cl := c.at(x+i, y); cl != nil {
			*cl = canvasCell{r: ' ', style: style}
		}
	}
}

// text writes s starting at x, y, clipping at the edges. It returns the
// number of cells covered.
func (c *canvas) text(x, y int, s string, style int) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cl := c.at(col, y); cl != nil {
			if w == 2 && c.at(col+1, y) == nil {
				// Half a wide rune would spill past the edge.
				*cl = canvasCell{r: ' ', style: style}
			} else {
				*cl = canvasCell{r: r, style: style}
				if w == 2 {
					*c.at(col+1, y) = canvasCell{style: style, wide: true}
				}
			}
		}
		col += w
	}
	return col - x
}

// centered writes s centered within n cells starting at x.
func (c *canvas) centered(x, y, n int, s string, style int) {
	s = runewidth.Truncate(s, n, "…")
	pad := (n - runewidth.StringWidth(s)) / 2
	c.text(x+pad, y, s, style)
}

// lines renders each row, grouping runs of the same style.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	var run, row strings.Builder
	for y := 0; y < c.height; y++ {
		row.Reset()
		run.Reset()
		current := -1
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.wide {
				continue
			}
			if cl.style != current && run.Len() > 0 {
				row.WriteString(c.styles[current].Render(run.String()))
				run.Reset()
			}
			current = cl.style
			run.WriteRune(cl.r)
		}
		if run.Len() > 0 {
			row.WriteString(c.styles[current].Render(run.String()))
		}
		out[y] = row.String()
	}
	return out
}

func (c *canvas) String() string {
	return strings.Join(c.lines(), "\n")
}
