package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/taskline/internal/model"
	"github.com/sandeepkv93/taskline/internal/timeline"
	"github.com/sandeepkv93/taskline/internal/update"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type listOptions struct {
	date      string
	cursor    float64
	cursorSet bool
	output    string
	now       func() time.Time
}

// listItem is one task as printed by list, placed against the window and
// cursor the listing was asked for.
type listItem struct {
	ID         string  `json:"id" yaml:"id"`
	Title      string  `json:"title" yaml:"title"`
	Start      string  `json:"start,omitempty" yaml:"start,omitempty"`
	Duration   float64 `json:"duration" yaml:"duration"`
	Unit       string  `json:"unit" yaml:"unit"`
	Importance int     `json:"importance" yaml:"importance"`
	Urgency    int     `json:"urgency" yaml:"urgency"`
	Progress   int     `json:"progress" yaml:"progress"`
	Completed  bool    `json:"completed" yaml:"completed"`
	Status     string  `json:"status" yaml:"status"`
	Kind       string  `json:"kind" yaml:"kind"`
	Active     bool    `json:"active" yaml:"active"`
}

type listing struct {
	Window string     `json:"window" yaml:"window"`
	View   string     `json:"view" yaml:"view"`
	Cursor string     `json:"cursor" yaml:"cursor"`
	Tasks  []listItem `json:"tasks" yaml:"tasks"`
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := listOptions{output: outputTable}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tasks of one timeline window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			opts.cursorSet = cmd.Flags().Changed("cursor")
			return runList(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.date, "date", "", "any date inside the window, YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&opts.cursor, "cursor", timeline.DefaultCursorPercent, "clock position in percent of the window")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json or yaml")
	return cmd
}

func runList(ctx context.Context, out, errOut io.Writer, cfg update.RuntimeConfig, opts listOptions) error {
	switch opts.output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
	now := time.Now
	if opts.now != nil {
		now = opts.now
	}
	anchor := now()
	if opts.date != "" {
		d, err := time.ParseInLocation("2006-01-02", opts.date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", opts.date, err)
		}
		anchor = d
	}
	cursor := cfg.Cursor
	if opts.cursorSet {
		cursor = opts.cursor
	}
	if cursor < 0 || cursor > 100 {
		return fmt.Errorf("--cursor must be between 0 and 100, got %v", cursor)
	}

	s, err := openSession(ctx, cfg, log.New(errOut, "taskline: ", 0))
	if err != nil {
		return err
	}
	defer s.Close()
	if s.loadErr != nil {
		fmt.Fprintf(errOut, "warning: could not read saved tasks: %v\n", s.loadErr)
	}

	w := timeline.NewWindow(cfg.View, anchor, cfg.DayStartHour)
	l := buildListing(s.planner.Sorted(cfg.SortField, cfg.SortOrder), w, cursor)
	switch opts.output {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	default:
		printTable(out, l)
		return nil
	}
}

// buildListing keeps the board's row order: tasks starting in the window,
// then unscheduled ones.
func buildListing(sorted []model.Task, w timeline.Window, cursor float64) listing {
	l := listing{
		Window: w.Label(),
		View:   string(w.Mode),
		Cursor: w.TimeAt(cursor).Format("2006-01-02 15:04"),
		Tasks:  []listItem{},
	}
	var unscheduled []listItem
	for _, t := range sorted {
		item := listItem{
			ID:         t.ID,
			Title:      t.Title,
			Duration:   model.DurationToUnits(w.Mode, t.Duration),
			Unit:       string(w.Unit),
			Importance: t.Importance,
			Urgency:    t.Urgency,
			Progress:   t.Progress,
			Completed:  t.Completed,
		}
		st := timeline.DeriveStatus(t, cursor, w)
		item.Status, item.Kind = st.String(), string(st.Kind)
		item.Active = timeline.Active(t, cursor, w)
		switch {
		case t.StartDate == nil:
			unscheduled = append(unscheduled, item)
		case w.Contains(*t.StartDate):
			item.Start = t.StartDate.Format("2006-01-02 15:04")
			l.Tasks = append(l.Tasks, item)
		}
	}
	l.Tasks = append(l.Tasks, unscheduled...)
	return l
}

func printTable(out io.Writer, l listing) {
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s (%s), clock at %s\n\n", bold.Sprint(l.Window), l.View, l.Cursor)
	if len(l.Tasks) == 0 {
		fmt.Fprintln(out, "no tasks in this window")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("TITLE"), bold.Sprint("START"), bold.Sprint("DURATION"),
		bold.Sprint("IMP"), bold.Sprint("PROGRESS"), bold.Sprint("STATUS"))
	for _, it := range l.Tasks {
		start := it.Start
		if start == "" {
			start = "-"
		}
		title := it.Title
		if it.Completed {
			title = "✓ " + title
		}
		tbl.AddRow(shortID(it.ID), title, start, strconv.FormatFloat(it.Duration, 'f', -1, 64)+unitSuffix(it.Unit),
			it.Importance, fmt.Sprintf("%d%%", it.Progress), statusColor(it).Sprint(it.Status))
	}
	tbl.RightAlign(4)
	fmt.Fprintln(out, tbl)
}

func statusColor(it listItem) *color.Color {
	switch {
	case it.Progress >= 100 || it.Completed:
		return color.New(color.FgGreen)
	case it.Active:
		return color.New(color.FgCyan)
	case it.Kind == string(timeline.StatusOverdue):
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

func unitSuffix(unit string) string {
	if unit == string(timeline.UnitDay) {
		return "d"
	}
	return "h"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
