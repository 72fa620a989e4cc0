package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/habitctl/internal/contract"
	"github.com/huangsam/habitctl/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// neverCompleted is the placeholder for habits with no completions yet.
const neverCompleted = "never"

// WriteHabitList outputs the habit report rows, dispatching based on the
// output format configured.
func WriteHabitList(habits []schema.HabitSummary, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHabitJSONResults(w, habits)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeHabitCSVResults(csvWriter, habits)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHabitTable(habits, cfg, w)
		}, "Wrote table")
	}
}

// writeHabitTable generates and writes the human-readable table.
func writeHabitTable(habits []schema.HabitSummary, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"#", "Name", "Period", "Streak", "Done", "Last", "Label"})

	// 2. Right-align the numeric columns
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	var data [][]string
	for i, h := range habits {
		last := neverCompleted
		if !h.LastCompleted.IsZero() {
			last = h.LastCompleted.Format(time.DateOnly)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(h.Name, GetMaxTableNameWidth(cfg)),
			string(h.Periodicity),
			strconv.Itoa(h.Streak),
			strconv.Itoa(h.Completions),
			last,
			label(h.Streak),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalStreak := 0
	totalDone := 0
	for _, h := range habits {
		totalStreak += h.Streak
		totalDone += h.Completions
	}
	_, err := fmt.Fprintf(writer, "Showing %d habits (total completions: %d, combined streak: %d)\n", len(habits), totalDone, totalStreak)
	return err
}

// writeHabitCSVResults writes the habit report in CSV format.
func writeHabitCSVResults(w *csv.Writer, habits []schema.HabitSummary) error {
	// CSV header
	header := []string{
		"position",
		"name",
		"periodicity",
		"streak",
		"completions",
		"last_completed",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, h := range habits {
		last := ""
		if !h.LastCompleted.IsZero() {
			last = h.LastCompleted.Format(time.RFC3339)
		}
		rec := []string{
			strconv.Itoa(i + 1),
			h.Name,
			string(h.Periodicity),
			strconv.Itoa(h.Streak),
			strconv.Itoa(h.Completions),
			last,
			contract.GetPlainLabel(h.Streak),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeHabitJSONResults writes the habit report in JSON format.
func writeHabitJSONResults(w io.Writer, habits []schema.HabitSummary) error {
	// 1. Prepare the data structure for JSON with position and label added
	type JSONHabitResult struct {
		Position int    `json:"position"`
		Label    string `json:"label"`
		schema.HabitSummary
	}

	output := make([]JSONHabitResult, len(habits))
	for i, h := range habits {
		output[i] = JSONHabitResult{
			Position:     i + 1,
			Label:        contract.GetPlainLabel(h.Streak),
			HabitSummary: h,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// WriteStreak outputs a single habit streak, dispatching on the output format.
func WriteStreak(summary schema.HabitSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			label := contract.GetPlainLabel
			if cfg.UseColors {
				label = contract.GetColorLabel
			}
			_, err := fmt.Fprintf(w, "%s (%s): streak %d [%s]\n",
				summary.Name, summary.Periodicity, summary.Streak, label(summary.Streak))
			return err
		}, "Wrote streak")
	}
}

// WriteLongest outputs the habit with the longest streak, dispatching on the
// output format.
func WriteLongest(summary schema.HabitSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Longest streak: %s (%s) with %d\n",
				summary.Name, summary.Periodicity, summary.Streak)
			return err
		}, "Wrote longest")
	}
}
