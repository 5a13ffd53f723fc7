package history

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
)

const (
	pngWidth   = 800
	pngMargin  = 20
	pngLineGap = 20
)

var (
	colBlack  = color.RGBA{A: 0xff}
	colClue   = color.RGBA{R: 0xcc, A: 0xff}
	colResult = color.RGBA{G: 0x80, A: 0xff}
)

// RenderPNG rasterizes a record: header lines, then the input grid above the
// result grid, bold lines on block boundaries. Input cells draw in red and
// result cells in green, matching the text-role convention.
func RenderPNG(rec domain.Record) ([]byte, error) {
	n := len(rec.Result)
	cell := 40
	if avail := (pngWidth - 2*pngMargin) / (n + 2); avail < cell {
		cell = avail
	}
	gridH := n*cell + 80

	headerLines := 1
	if rec.Mode == domain.ModeChallenge {
		headerLines = 3
	}
	height := pngMargin + headerLines*pngLineGap + 2*gridH + 40

	img := image.NewRGBA(image.Rect(0, 0, pngWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := pngMargin + 10
	drawText(img, pngMargin, y, "Time: "+rec.Timestamp, colBlack)
	y += pngLineGap
	if rec.Mode == domain.ModeChallenge {
		drawText(img, pngMargin, y, "Mode: challenge - "+rec.Difficulty, colBlack)
		y += pngLineGap
		drawText(img, pngMargin, y, "Elapsed: "+rec.Elapsed, colBlack)
		y += pngLineGap
	}
	y += 10

	input := rec.Input
	inputTitle := "Input:"
	if rec.Mode == domain.ModeChallenge && rec.Puzzle != nil {
		input = rec.Puzzle
		inputTitle = "Puzzle:"
	}
	y = drawGrid(img, input, rec.K, cell, y, inputTitle, colClue)
	drawText(img, pngWidth/2-50, y-15, "↓ result", colResult)
	drawGrid(img, rec.Result, rec.K, cell, y, "Result:", colResult)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawText(img *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawGrid(img *image.RGBA, g domain.Grid, k, cell, y int, title string, textCol color.RGBA) int {
	n := len(g)
	drawText(img, pngMargin, y, title, textCol)
	y += 15
	x0 := (pngWidth - n*cell) / 2

	for i := 0; i <= n; i++ {
		w := 1
		if i%k == 0 {
			w = 2
		}
		fillRect(img, x0, y+i*cell, n*cell+w, w, colBlack) // horizontal
		fillRect(img, x0+i*cell, y, w, n*cell+w, colBlack) // vertical
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := g[i][j]
			if v == "" {
				v = "·"
			}
			cx := x0 + j*cell + cell/2 - 3
			cy := y + i*cell + cell/2 + 4
			drawText(img, cx, cy, v, textCol)
		}
	}
	return y + n*cell + 45
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}
