package app

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/suxatcode/force-layout/layout"
)

const (
	snapshotWidth  = 800
	snapshotHeight = 600
	snapshotMargin = 20
)

// WriteSnapshot draws the nodes and edges of g, scaled to fit, into a PNG
// file. It is a debugging aid, not a renderer.
func WriteSnapshot(filename string, g *layout.Graph, invertColor bool) error {
	img := drawGraph(g, snapshotWidth, snapshotHeight, invertColor)
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create snapshot")
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	return nil
}

func drawGraph(g *layout.Graph, width, height int, invertColor bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var background, foreground color.Color = color.White, color.Black
	if invertColor {
		background, foreground = color.Black, color.White
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, background)
		}
	}
	project := fitToImage(g, width, height)
	for _, edge := range g.Edges {
		x0, y0, ok0 := project(g.Nodes[edge.Source])
		x1, y1, ok1 := project(g.Nodes[edge.Target])
		if ok0 && ok1 {
			drawLine(img, x0, y0, x1, y1, color.Gray{Y: 0x80})
		}
	}
	for _, node := range g.Nodes {
		x, y, ok := project(node)
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				img.Set(int(x)+dx, int(y)+dy, foreground)
			}
		}
	}
	return img
}

// fitToImage returns a projection of node positions into the image, keeping
// the aspect ratio.
func fitToImage(g *layout.Graph, width, height int) func(*layout.GraphNode) (float64, float64, bool) {
	x0, y0 := math.Inf(+1), math.Inf(+1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, node := range g.Nodes {
		if len(node.Pos) != 2 {
			continue
		}
		x0, x1 = math.Min(x0, node.Pos.X()), math.Max(x1, node.Pos.X())
		y0, y1 = math.Min(y0, node.Pos.Y()), math.Max(y1, node.Pos.Y())
	}
	extent := math.Max(math.Max(x1-x0, y1-y0), 1e-9)
	scale := math.Min(float64(width-2*snapshotMargin), float64(height-2*snapshotMargin)) / extent
	return func(node *layout.GraphNode) (float64, float64, bool) {
		if len(node.Pos) != 2 || math.IsNaN(node.Pos.X()) || math.IsNaN(node.Pos.Y()) {
			return 0, 0, false
		}
		return snapshotMargin + (node.Pos.X()-x0)*scale, snapshotMargin + (node.Pos.Y()-y0)*scale, true
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps == 0 {
		img.Set(int(x0), int(y0), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		img.Set(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), c)
	}
}
