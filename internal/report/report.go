// Package report runs picks without a window and prints what the select
// buffer said, so different quirks and decode strategies can be compared
// from a terminal.
package report

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"gopkg.in/yaml.v3"

	"selection-issue/internal/pick"
	"selection-issue/internal/scene"
	"selection-issue/internal/selection"
	"selection-issue/pkg/glsel"
)

type Options struct {
	Width      int
	Height     int
	Quirk      glsel.Quirk
	Strategy   pick.Strategy
	BufferSize int
}

type Record struct {
	MinDepth uint32   `yaml:"min_depth"`
	MaxDepth uint32   `yaml:"max_depth"`
	Names    []uint32 `yaml:"names,flow"`
}

type Entry struct {
	Device    [2]int   `yaml:"device,flow"`
	PickPoint [2]int   `yaml:"pick_point,flow"`
	Hits      int      `yaml:"hits"`
	Records   []Record `yaml:"records,omitempty"`
	Selected  int      `yaml:"selected"`
	LastWins  int      `yaml:"last_wins"`
	Nearest   int      `yaml:"nearest"`
	Disagree  bool     `yaml:"disagree"`
	Error     string   `yaml:"error,omitempty"`
}

type Report struct {
	Vendor   string  `yaml:"vendor"`
	Renderer string  `yaml:"renderer"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Quirk    string  `yaml:"quirk"`
	Strategy string  `yaml:"strategy"`
	Entries  []Entry `yaml:"entries"`
}

// Run clicks every point in order against one session, the way a user
// would, and records each outcome.
func Run(opts Options, points []image.Point) Report {
	ctx := glsel.New(opts.Width, opts.Height, opts.Quirk)
	renderer := scene.NewRenderer()
	picker := pick.New(ctx, renderer, pick.WithStrategy(opts.Strategy), pick.WithBufferSize(opts.BufferSize))
	st := selection.New(opts.Width, opts.Height)

	rep := Report{
		Vendor:   ctx.Vendor(),
		Renderer: ctx.Renderer(),
		Width:    opts.Width,
		Height:   opts.Height,
		Quirk:    opts.Quirk.String(),
		Strategy: opts.Strategy.String(),
	}
	for _, pt := range points {
		res, err := picker.OnClick(st, pt)
		e := Entry{
			Device:    [2]int{pt.X, pt.Y},
			PickPoint: [2]int{res.PickPoint.X, res.PickPoint.Y},
			Hits:      res.Hits,
			Selected:  res.Selected,
			LastWins:  pick.Decode(res.Records, pick.LastWins),
			Nearest:   pick.Decode(res.Records, pick.Nearest),
		}
		for _, r := range res.Records {
			e.Records = append(e.Records, Record{MinDepth: r.MinDepth, MaxDepth: r.MaxDepth, Names: r.Names})
		}
		e.Disagree = e.LastWins != e.Nearest
		if err != nil {
			e.Error = err.Error()
		}
		rep.Entries = append(rep.Entries, e)
	}
	return rep
}

// Write prints rep as "text" or "yaml".
func Write(w io.Writer, rep Report, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case "text", "":
		return writeText(w, rep)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func writeText(w io.Writer, rep Report) error {
	fmt.Fprintf(w, "%s - %s\n", rep.Vendor, rep.Renderer)
	fmt.Fprintf(w, "surface %dx%d, quirk %s, strategy %s\n\n", rep.Width, rep.Height, rep.Quirk, rep.Strategy)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tPICK\tHITS\tSELECTED\tLAST-WINS\tNEAREST\tNOTE")
	for _, e := range rep.Entries {
		note := e.Error
		if note == "" && e.Disagree {
			note = "decoders disagree"
		}
		fmt.Fprintf(tw, "%d,%d\t%d,%d\t%d\t%s\t%s\t%s\t%s\n",
			e.Device[0], e.Device[1], e.PickPoint[0], e.PickPoint[1], e.Hits,
			idString(e.Selected), idString(e.LastWins), idString(e.Nearest), note)
	}
	return tw.Flush()
}

func idString(id int) string {
	if id == selection.None {
		return "-"
	}
	return strconv.Itoa(id)
}

// ParsePoints reads "x,y" pairs. Numbers may be separated by commas,
// semicolons or whitespace in any mix and are taken two at a time, so
// "480, 300" and "480 ,300" mean the same point.
func ParsePoints(s string) ([]image.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("report: no points in %q", s)
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("report: odd number of coordinates in %q", s)
	}
	points := make([]image.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("report: point %d: %w", i/2, err)
		}
		y, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("report: point %d: %w", i/2, err)
		}
		points = append(points, image.Pt(x, y))
	}
	return points, nil
}
