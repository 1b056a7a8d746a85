package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"stabilitylog/internal/stability"
)

const defaultCSVPath = "schedule.csv"

var errNoRows = errors.New("csv contains no schedule rows")

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var (
		asJSON bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:           "import_schedule [file.csv|-]",
		Short:         "Preview schedule rows from a CSV export",
		Long:          "Parses a schedule CSV the same way the workspace import does and summarises the rows it would append to a draft.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultCSVPath
			if len(args) == 1 {
				path = args[0]
			}
			rows, err := readRows(path, stdin)
			if err != nil {
				return err
			}
			if strict && len(rows) == 0 {
				return errNoRows
			}
			if asJSON {
				encoder := json.NewEncoder(stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(rows)
			}
			return writeSummary(stdout, sourceName(path), rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed rows as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the csv yields no rows")
	return cmd
}

func readRows(path string, stdin io.Reader) ([]stability.ScheduleEntry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("csv path must not be empty")
	}
	if path == "-" {
		return stability.ParseScheduleCSV(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	rows, err := stability.ParseScheduleCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func sourceName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

func writeSummary(w io.Writer, source string, rows []stability.ScheduleEntry) error {
	intervals := make(map[string]int)
	for _, row := range rows {
		key := strings.TrimSpace(row.Interval)
		if key == "" {
			key = "(none)"
		}
		intervals[key]++
	}
	keys := make([]string, 0, len(intervals))
	for key := range intervals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Parsed %d schedule row(s) from %s\n", len(rows), source)
	for _, key := range keys {
		fmt.Fprintf(&b, "  interval %-14s %d\n", key, intervals[key])
	}
	if chambers := stability.DistinctChambers(nil, rows); len(chambers) > 0 {
		fmt.Fprintf(&b, "Chambers: %s\n", strings.Join(chambers, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
