// Command asts queries the ASTS backend from a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/cache"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/timetable"
	"golang.org/x/term"
)

const defaultWidth = 120

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// Logs go to stderr so rendered timetables on stdout stay clean.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, log)
	svc := service.NewTimetableService(client, cache.Nop{}, cache.Nop{}, 0, log)

	var err error
	switch os.Args[1] {
	case "timetable":
		err = runTimetable(ctx, svc, os.Args[2:], os.Stdout)
	case "educator":
		err = runEducator(ctx, svc, os.Args[2:], os.Stdout)
	case "generate":
		err = runGenerate(ctx, svc, os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fail(log, err)
	}
}

func runTimetable(ctx context.Context, svc *service.TimetableService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("timetable", flag.ExitOnError)
	var q model.TimetableQuery
	fs.StringVar(&q.OfferingYear, "year", "", "offering year, e.g. 2025")
	fs.StringVar(&q.OfferingSemester, "semester", "", "offering semester")
	fs.StringVar(&q.Day, "day", "", "day filter, 1 (Monday) to 5 (Friday)")
	fs.StringVar(&q.UnitCode, "unit", "", "unit code filter")
	detailed := fs.Bool("detailed", false, "list every class below the grid")
	_ = fs.Parse(args)
	q.Normalize()

	data, err := svc.Query(ctx, q)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Timetable %s semester %s (%d classes)\n\n", data.OfferingYear, data.OfferingSemester, len(data.ClassList))
	grid := timetable.BuildGrid(data.ClassList, timetable.ModeCompact)
	if err := timetable.WriteText(out, grid, terminalWidth()); err != nil {
		return err
	}
	if *detailed {
		fmt.Fprintln(out)
		return writeRows(out, timetable.Rows(data.ClassList))
	}
	return nil
}

func runEducator(ctx context.Context, svc *service.TimetableService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("educator", flag.ExitOnError)
	var q model.EducatorTimetableQuery
	fs.StringVar(&q.OfferingYear, "year", "", "offering year")
	fs.StringVar(&q.OfferingSemester, "semester", "", "offering semester")
	fs.StringVar(&q.EducatorID, "id", "", "educator staff id")
	_ = fs.Parse(args)
	q.Normalize()

	data, err := svc.EducatorTimetable(ctx, q)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Educator: %s\n\n", data.EducatorName)
	return writeRows(out, timetable.Rows(data.ClassList))
}

func runGenerate(ctx context.Context, svc *service.TimetableService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var req model.GenerateTimetableRequest
	fs.StringVar(&req.Year, "year", "", "offering year")
	fs.StringVar(&req.Semester, "semester", "", "offering semester")
	_ = fs.Parse(args)
	req.Normalize()

	if err := svc.Generate(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(out, "Timetable generated successfully!")
	return nil
}

func writeRows(out io.Writer, rows []timetable.ListRow) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tTYPE\tDAY\tSTART\tEND\tVENUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.UnitCode, r.ClassType, r.Day, r.Start, r.End, r.Venue)
	}
	return tw.Flush()
}

// terminalWidth is the width of stdout, or defaultWidth when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func fail(log zerolog.Logger, err error) {
	var fe *service.FieldError
	if errors.As(err, &fe) {
		for field, msg := range fe.Fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		os.Exit(2)
	}
	log.Error().Err(err).Msg(backend.Message(err))
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: asts <command> [flags]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  timetable -year 2025 -semester 1 [-day 1] [-unit FIT3155] [-detailed]")
	fmt.Fprintln(os.Stderr, "  educator  -year 2025 -semester 1 -id E100")
	fmt.Fprintln(os.Stderr, "  generate  -year 2025 -semester 1")
}
