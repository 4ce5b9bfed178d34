package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/config"
	"github.com/Flyrell/daymark/internal/export"
	"github.com/Flyrell/daymark/internal/session"
	"github.com/Flyrell/daymark/internal/stringutil"
	"github.com/spf13/cobra"
)

// pickOptions holds the parsed flags of the pick command.
type pickOptions struct {
	month, year string
	days        string
	random      int
	on          string
	groups      []string
	assign      string
	seed        int64
	seeded      bool
	format      string
	output      string
	copy        bool
	save        string
	bom         bool
	bomSet      bool
	table       bool
}

var pickCmd = LeafCommand{
	Use:   "pick",
	Short: "Select days and assign groups without the interactive board",
	Long: `Select days of a month (explicitly with --days or at random with --random),
randomly assign one option of each group to every selected day, then print,
export, copy or save the result.

Groups come from the config presets; --group NAME=a,b adds or overrides one.
By default every group given with --group is assigned, or every preset when
none is given.`,
	Args: cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (default: current year)"},
		{Name: "days", Usage: "comma separated days to select, e.g. 1,5,9"},
		{Name: "on", Usage: "restrict --random to weekdays, e.g. mon,wed or weekends"},
		{Name: "assign", Usage: "comma separated groups to assign (default: see above)"},
		{Name: "seed", Usage: "random seed for reproducible results"},
		{Name: "export", Usage: "export format (csv, text, html, pdf)"},
		{Name: "output", Usage: "export path, - for stdout (default: daymark-YYYY-MM.<ext>)"},
		{Name: "save", Usage: "save the result as a named session"},
	},
	IntFlags: []IntFlag{
		{Name: "random", Usage: "select K random days (default: pick_count from config)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "copy", Usage: "copy the result to the clipboard"},
		{Name: "table", Usage: "print the result as a table"},
		{Name: "bom", Usage: "prefix CSV output with a UTF-8 BOM (default: csv_bom from config)"},
	},
	ArrayFlags: []StringArrayFlag{
		{Name: "group", Usage: "group definition NAME=a,b,c (repeatable)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := getAppPaths()
		if err != nil {
			return err
		}
		o, err := readPickFlags(cmd)
		if err != nil {
			return err
		}
		return runPick(cmd, paths, o, time.Now())
	},
}.Build()

func readPickFlags(cmd *cobra.Command) (pickOptions, error) {
	f := cmd.Flags()
	var o pickOptions
	o.month, _ = f.GetString("month")
	o.year, _ = f.GetString("year")
	o.days, _ = f.GetString("days")
	o.on, _ = f.GetString("on")
	o.assign, _ = f.GetString("assign")
	o.format, _ = f.GetString("export")
	o.output, _ = f.GetString("output")
	o.save, _ = f.GetString("save")
	o.random, _ = f.GetInt("random")
	o.copy, _ = f.GetBool("copy")
	o.table, _ = f.GetBool("table")
	o.bom, _ = f.GetBool("bom")
	o.bomSet = f.Changed("bom")
	o.groups, _ = f.GetStringArray("group")

	if f.Changed("random") && o.random < 1 {
		return o, fmt.Errorf("invalid --random value %d (expected at least 1)", o.random)
	}
	if seed, _ := f.GetString("seed"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return o, fmt.Errorf("invalid --seed value %q (expected an integer)", seed)
		}
		o.seed, o.seeded = n, true
	}
	return o, nil
}

func runPick(cmd *cobra.Command, paths appPaths, o pickOptions, now time.Time) error {
	cfg, err := config.Load(paths.config)
	if err != nil {
		return err
	}

	year, month, err := calendar.ParseMonthYear(o.month, o.year, now)
	if err != nil {
		return err
	}

	opts := []board.Option{board.WithLogger(logger)}
	if o.seeded {
		opts = append(opts, board.WithSource(rand.New(rand.NewPCG(uint64(o.seed), 0))))
	}
	b, err := board.New(year, month, cfg.Groups, opts...)
	if err != nil {
		return err
	}

	var flagGroups []string
	for _, def := range o.groups {
		name, options, err := parseGroupDef(def)
		if err != nil {
			return err
		}
		if err := b.PutGroup(name, options); err != nil {
			return fmt.Errorf("--group %q: %w", def, err)
		}
		flagGroups = append(flagGroups, strings.TrimSpace(name))
	}

	if err := selectPickDays(b, o, cfg.PickCount); err != nil {
		return err
	}

	names := stringutil.SplitList(o.assign)
	if len(names) == 0 {
		names = flagGroups
	}
	if len(names) == 0 {
		for _, g := range b.Groups() {
			names = append(names, g.Name)
		}
	}
	if len(names) == 0 {
		return errors.New("no groups defined (use --group NAME=a,b or 'daymark group add')")
	}
	for _, name := range names {
		if _, err := b.Assign(name); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	data := export.FromBoard(b, cfg.Title)
	toStdout := o.output == "-"
	if o.table && !toStdout {
		if err := printTable(out, data); err != nil {
			return err
		}
	} else if !toStdout {
		for _, line := range b.ResultLines() {
			_, _ = fmt.Fprintln(out, line)
		}
	}

	if o.format != "" || o.output != "" {
		format, err := export.ParseFormat(o.format)
		if err != nil {
			return err
		}
		bom := cfg.CSVBOM
		if o.bomSet {
			bom = o.bom
		}
		path, err := writeExportFile(cmd, data, format, o.output, o.save, bom)
		if err != nil {
			return err
		}
		if !toStdout {
			_, _ = fmt.Fprintf(out, "exported %d rows to %s\n", len(data.Rows), Primary(path))
		}
	}

	if o.copy {
		if err := copyToClipboard(data); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		if !toStdout {
			_, _ = fmt.Fprintln(out, Success("copied to clipboard"))
		}
	}

	if o.save != "" {
		err := withStore(paths.db, func(ctx context.Context, store session.Store) error {
			return saveSession(ctx, cmd, store, o.save, b, toStdout)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// selectPickDays applies --days or --random to the board. With neither flag,
// defaultCount random days are picked.
func selectPickDays(b *board.Board, o pickOptions, defaultCount int) error {
	if o.days != "" {
		if o.random > 0 {
			return errors.New("--days and --random cannot be used together")
		}
		if o.on != "" {
			return errors.New("--on only applies to --random")
		}
		for _, part := range stringutil.SplitList(o.days) {
			day, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("invalid day %q in --days", part)
			}
			if b.IsSelected(day) {
				continue
			}
			if _, err := b.Toggle(day); err != nil {
				return err
			}
		}
		return nil
	}

	k := o.random
	if k == 0 {
		k = defaultCount
	}
	weekdays, err := calendar.ParseWeekdays(o.on)
	if err != nil {
		return err
	}
	var candidates []int
	if weekdays != nil {
		candidates, err = calendar.CandidateDays(b.Year(), b.Month(), weekdays)
		if err != nil {
			return err
		}
	}
	_, err = b.PickRandom(k, candidates)
	return err
}

// parseGroupDef splits "name=a,b,c".
func parseGroupDef(def string) (string, []string, error) {
	name, options, ok := strings.Cut(def, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid --group value %q (expected NAME=a,b)", def)
	}
	return name, stringutil.SplitList(options), nil
}

// saveSession stores the board and reports the outcome.
func saveSession(ctx context.Context, cmd *cobra.Command, store session.Store, name string, b *board.Board, quiet bool) error {
	sess, changed, err := store.Save(ctx, name, b.Snapshot())
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}
	msg := fmt.Sprintf("session '%s' saved (%s)", Primary(sess.Name), Silent(sess.ID))
	if !changed {
		msg = fmt.Sprintf("session '%s' unchanged (%s)", Primary(sess.Name), Silent(sess.ID))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
