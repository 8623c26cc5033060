package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/dataset"
)

// Options controls the size and title of a rendered chart.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 4 * vg.Inch
	}
	return w, h
}

// yearTicks labels whole years only.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := int(math.Ceil(min)), int(math.Floor(max))
	step := 1
	for (hi-lo)/step > 10 {
		step++
	}
	var ticks []plot.Tick
	for y := lo; y <= hi; y++ {
		if (y-lo)%step == 0 {
			ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
		} else {
			ticks = append(ticks, plot.Tick{Value: float64(y)})
		}
	}
	return ticks
}

// LineChart renders one line with markers per series, share over year, and
// writes it to w as SVG. No series yields an empty chart.
func LineChart(w io.Writer, series []analysis.Series, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Renewable Share (%)"
	p.X.Tick.Marker = yearTicks{}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			pts[j].X = float64(pt.Year)
			pts[j].Y = pt.Share
		}

		line, marks, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Country, err)
		}
		c := plotutil.Color(i)
		line.Color = c
		line.Width = vg.Points(2)
		marks.Color = c
		marks.Shape = draw.CircleGlyph{}
		marks.Radius = vg.Points(2.5)

		p.Add(line, marks)
		p.Legend.Add(s.Country, line, marks)
	}

	return render(w, p, opts)
}

// BarChart renders a horizontal bar per leaderboard row, leader on top, each
// bar coloured by its share on scale.
func BarChart(w io.Writer, leaders dataset.Table, scale *Scale, opts Options) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Renewable Share (%)"
	p.X.Min = 0
	p.Add(plotter.NewGrid())

	lo, hi, _ := analysis.ShareRange(leaders)
	n := len(leaders)
	names := make([]string, n)
	for i, r := range leaders {
		pos := n - 1 - i
		names[pos] = r.Country

		bar, err := plotter.NewBarChart(plotter.Values{r.RenewableShare}, vg.Points(14))
		if err != nil {
			return fmt.Errorf("bar %s: %w", r.Country, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(pos)
		bar.Color = scale.At(r.RenewableShare, lo, hi)
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: r.RenewableShare, Y: float64(pos)}},
			Labels: []string{fmt.Sprintf("%.1f%%", r.RenewableShare)},
		})
		if err != nil {
			return err
		}
		label.Offset = vg.Point{X: vg.Points(4), Y: -vg.Points(4)}
		p.Add(label)
	}
	if n > 0 {
		p.NominalY(names...)
		p.X.Max = hi * 1.15
	}

	return render(w, p, opts)
}

func render(w io.Writer, p *plot.Plot, opts Options) error {
	width, height := opts.size()
	wt, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
