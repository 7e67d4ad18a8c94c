package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/tessarin/mindcanvas/pkg/model"
)

// Snapshot canvas defaults and palette.
const (
	defaultSnapshotWidth  = 1200
	defaultSnapshotHeight = 800

	snapshotBg     = "#1E1F29"
	snapshotEdge   = "#6272A4"
	snapshotNode   = "#44475A"
	snapshotRoot   = "#BD93F9"
	snapshotText   = "#F8F8F2"
	snapshotBorder = "#BFBFBF"
)

// maxLabelRunes caps node text in snapshots; longer text is cut with an
// ellipsis.
const maxLabelRunes = 28

// MapSnapshotOptions configures a rendered snapshot of a mind map.
type MapSnapshotOptions struct {
	// Path is the output file. Its extension selects the format unless
	// Format is set explicitly.
	Path   string
	Format string // "svg" or "png"
	Map    *model.Map
	Width  int // canvas width in pixels, default 1200
	Height int // canvas height in pixels, default 800
}

// SaveMapSnapshot renders a mind map to a vector or raster image. Nodes are
// laid out radially: the root at the center, each top-level branch in its
// own angular sector, deeper nodes further out within their branch sector.
func SaveMapSnapshot(opts MapSnapshotOptions) error {
	if opts.Map == nil {
		return fmt.Errorf("no map to snapshot")
	}
	if err := opts.Map.Validate(); err != nil {
		return fmt.Errorf("snapshot of invalid map: %w", err)
	}

	format := opts.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(opts.Path), ".")
	}

	if opts.Width <= 0 {
		opts.Width = defaultSnapshotWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultSnapshotHeight
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	positions := layoutRadial(opts.Map, opts.Width, opts.Height)

	switch format {
	case "svg":
		return writeSVG(opts, positions)
	case "png":
		return writePNG(opts, positions)
	default:
		return fmt.Errorf("unsupported snapshot format %q (want svg or png)", format)
	}
}

// SaveMapSnapshotAll renders one snapshot per supported format into dir,
// concurrently, and returns the written paths.
func SaveMapSnapshotAll(dir, baseName string, m *model.Map) ([]string, error) {
	formats := []string{"svg", "png"}
	paths := make([]string, len(formats))

	var g errgroup.Group
	for i, format := range formats {
		paths[i] = filepath.Join(dir, baseName+"."+format)
		opts := MapSnapshotOptions{Path: paths[i], Format: format, Map: m}
		g.Go(func() error { return SaveMapSnapshot(opts) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

type point struct {
	X, Y float64
}

// layoutRadial assigns each node a position. The root sits at the canvas
// center; each top-level branch owns an equal angular sector and its subtree
// subdivides that sector at increasing radii.
func layoutRadial(m *model.Map, width, height int) map[string]point {
	positions := make(map[string]point, len(m.Nodes))
	root := m.Root()
	cx, cy := float64(width)/2, float64(height)/2
	positions[root.ID] = point{X: cx, Y: cy}

	branches := m.Children(root.ID)
	if len(branches) == 0 {
		return positions
	}

	// Radius step leaves a margin so deep nodes stay on the canvas.
	depthMax := 1
	for _, n := range m.Nodes {
		if d := m.Depth(n.ID); d > depthMax {
			depthMax = d
		}
	}
	maxRadius := math.Min(cx, cy) - 60
	step := maxRadius / float64(depthMax)

	sector := 2 * math.Pi / float64(len(branches))
	for i, branch := range branches {
		from := float64(i) * sector
		placeSubtree(m, branch, 1, from, from+sector, step, cx, cy, positions)
	}
	return positions
}

// placeSubtree positions node at the middle of its angular span, then splits
// the span equally among its children.
func placeSubtree(m *model.Map, n *model.Node, depth int, from, to, step, cx, cy float64, positions map[string]point) {
	angle := (from + to) / 2
	radius := float64(depth) * step
	positions[n.ID] = point{
		X: cx + radius*math.Cos(angle),
		Y: cy + radius*math.Sin(angle),
	}

	children := m.Children(n.ID)
	if len(children) == 0 {
		return
	}
	span := (to - from) / float64(len(children))
	for i, c := range children {
		cFrom := from + float64(i)*span
		placeSubtree(m, c, depth+1, cFrom, cFrom+span, step, cx, cy, positions)
	}
}

func label(n *model.Node) string {
	runes := []rune(n.Text)
	if len(runes) > maxLabelRunes {
		return string(runes[:maxLabelRunes-1]) + "…"
	}
	return n.Text
}

func writeSVG(opts MapSnapshotOptions, positions map[string]point) error {
	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	m := opts.Map
	canvas := svg.New(f)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(m.Title)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+snapshotBg)

	// Edges first so nodes draw on top of them.
	for _, n := range m.Nodes {
		if n.ParentID == "" {
			continue
		}
		p, ok := positions[n.ID]
		pp, pok := positions[n.ParentID]
		if !ok || !pok {
			continue
		}
		canvas.Line(int(pp.X), int(pp.Y), int(p.X), int(p.Y),
			"stroke:"+snapshotEdge+";stroke-width:1.5")
	}

	root := m.Root()
	for _, n := range m.Nodes {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		fill, r := snapshotNode, 14
		if n.ID == root.ID {
			fill, r = snapshotRoot, 22
		}
		canvas.Circle(int(p.X), int(p.Y), r,
			"fill:"+fill+";stroke:"+snapshotBorder+";stroke-width:1")
		canvas.Text(int(p.X), int(p.Y)+r+14, label(n),
			"text-anchor:middle;font-size:12px;font-family:sans-serif;fill:"+snapshotText)
	}

	canvas.End()
	return nil
}

func writePNG(opts MapSnapshotOptions, positions map[string]point) error {
	m := opts.Map
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetHexColor(snapshotBg)
	dc.Clear()

	dc.SetHexColor(snapshotEdge)
	dc.SetLineWidth(1.5)
	for _, n := range m.Nodes {
		if n.ParentID == "" {
			continue
		}
		p, ok := positions[n.ID]
		pp, pok := positions[n.ParentID]
		if !ok || !pok {
			continue
		}
		dc.DrawLine(pp.X, pp.Y, p.X, p.Y)
		dc.Stroke()
	}

	dc.SetFontFace(basicfont.Face7x13)
	root := m.Root()
	for _, n := range m.Nodes {
		p, ok := positions[n.ID]
		if !ok {
			continue
		}
		radius := 14.0
		dc.SetHexColor(snapshotNode)
		if n.ID == root.ID {
			radius = 22.0
			dc.SetHexColor(snapshotRoot)
		}
		dc.DrawCircle(p.X, p.Y, radius)
		dc.Fill()

		dc.SetHexColor(snapshotText)
		dc.DrawStringAnchored(label(n), p.X, p.Y+radius+12, 0.5, 0.5)
	}

	if err := dc.SavePNG(opts.Path); err != nil {
		return fmt.Errorf("write png snapshot: %w", err)
	}
	return nil
}
