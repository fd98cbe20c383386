// Package output provides utilities for formatting and displaying run reports.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/drill-cost/internal/analysis"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders the report in the named format.
func Write(w io.Writer, outputFormat string, report *analysis.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, report)
	case constants.OutputFormatCSV:
		return CsvFormat(w, report)
	case constants.OutputFormatJSON:
		return JSONFormat(w, report)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report *analysis.Report) error {
	p := message.NewPrinter(language.English)
	s := report.Summary

	_, _ = p.Fprintf(w, "--- Drilling report for %s (%s) ---\n", report.Operator, report.Machine.Label())
	_, _ = p.Fprintf(w, "Trials: %d configured, %d valid, %d skipped\n\n", report.ConfiguredTrials, s.Trials, report.SkippedTrials)

	_, _ = p.Fprintf(w, "Trial | Pressure (bar) | Depth (m) | Speed (m/min) | Time (h) | Cost | Drilled (m) | Fuel (l) | Fuel cost | CO2 (kg) | Difficulty\n")
	_, _ = p.Fprintf(w, "_____ | ______________ | _________ | _____________ | ________ | ____ | ___________ | ________ | _________ | ________ | __________\n")
	for _, r := range report.Trials {
		_, _ = p.Fprintf(w, "%d | %.2f | %.2f | %.2f | %.2f | %s | %.2f | %.2f | %s | %.2f | %s\n",
			r.Index, r.Pressure, r.TargetDepth, r.Speed, r.DurationHours,
			format.Rupiah(r.OperationalCost), r.TotalDrilled, r.FuelLiters,
			format.Rupiah(r.FuelCost), r.CO2Kg, r.Difficulty)
	}

	_, _ = p.Fprintf(w, "\nSummary\n")
	_, _ = p.Fprintf(w, "  Total cost:           %s\n", format.Rupiah(s.Totals.Cost))
	_, _ = p.Fprintf(w, "  Total drilled:        %.2f m\n", s.Totals.Drilled)
	_, _ = p.Fprintf(w, "  Average drilled:      %.2f m\n", s.Averages.Drilled)

	_, _ = p.Fprintf(w, "\nFuel and environment\n")
	_, _ = p.Fprintf(w, "  Fuel consumed:        %.2f liter\n", s.Totals.FuelLiters)
	_, _ = p.Fprintf(w, "  Fuel cost:            %s\n", format.Rupiah(s.Totals.FuelCost))
	_, _ = p.Fprintf(w, "  CO2 emission:         %.2f kg\n", s.Totals.CO2Kg)
	if s.Feedback.Fuel.Applicable {
		_, _ = p.Fprintf(w, "  Fuel efficiency:      %.2f m/liter [%s] %s\n", s.FuelEfficiency, s.Feedback.Fuel.Band, s.Feedback.Fuel.Message)
	}
	_, _ = p.Fprintf(w, "  Environment:          [%s] %s\n", s.Feedback.Environment.Band, s.Feedback.Environment.Message)

	_, _ = p.Fprintf(w, "\nCost efficiency\n")
	_, _ = p.Fprintf(w, "  Actual cost:          %s\n", format.Rupiah(s.Totals.Cost))
	_, _ = p.Fprintf(w, "  Ideal cost target:    %s\n", format.Rupiah(s.Totals.IdealCostTarget))
	_, _ = p.Fprintf(w, "  Cost efficiency:      %.1f%% [%s] %s\n", s.CostEfficiency, s.Feedback.Cost.Band, s.Feedback.Cost.Message)

	_, _ = p.Fprintf(w, "\nRecommendation for the next project\n")
	_, _ = p.Fprintf(w, "  Average depth:        %.2f m\n", s.Averages.Drilled)
	_, _ = p.Fprintf(w, "  Average pressure:     %.2f bar\n", s.Averages.Pressure)
	_, _ = p.Fprintf(w, "  Difficulty:           %s\n", s.DominantTier)
	_, _ = p.Fprintf(w, "  Recommended machine:  %s\n", s.RecommendedMachine.Label())

	if len(report.Alternatives) > 0 {
		_, _ = p.Fprintf(w, "\nMachine comparison\n")
		for _, alt := range report.Alternatives {
			marker := ""
			if alt.Configured {
				marker = " (configured)"
			}
			_, _ = p.Fprintf(w, "  %d. %-16s score %5.1f | fuel %.2f liter | %s | %.2f kg CO2 | delta %s%s\n",
				alt.Rank, alt.Machine.Label(), alt.Score, alt.FuelLiters, format.Rupiah(alt.FuelCost),
				alt.CO2Kg, format.Rupiah(alt.FuelCostDelta), marker)
		}
	}

	_, _ = p.Fprintf(w, "\nPerformance score:      %.1f / 100 [%s] %s\n", s.Score.Overall, s.Feedback.Performance.Band, s.Feedback.Performance.Message)
	_, err := p.Fprintf(w, "%s\n", s.Feedback.Usage.Message)
	return err
}

// CsvFormat outputs per-trial rows in comma-separated value format.
func CsvFormat(w io.Writer, report *analysis.Report) error {
	cw := csv.NewWriter(w)
	header := []string{"trial", "pressure", "target depth", "speed", "duration (h)", "operational cost",
		"total drilled", "fuel (liter)", "fuel cost", "co2 (kg)", "difficulty"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range report.Trials {
		row := []string{
			strconv.Itoa(r.Index),
			formatFloat(r.Pressure),
			formatFloat(r.TargetDepth),
			formatFloat(r.Speed),
			formatFloat(r.DurationHours),
			formatFloat(r.OperationalCost),
			formatFloat(r.TotalDrilled),
			formatFloat(r.FuelLiters),
			formatFloat(r.FuelCost),
			formatFloat(r.CO2Kg),
			r.Difficulty.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV representation of the report.
func CsvString(report *analysis.Report) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, report); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(w io.Writer, report *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
