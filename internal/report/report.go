package report

import (
	"fmt"
	"io"

	"traffic-engine/internal/model"
)

const currency = "₹"

// SampleLines are the example records shown when no input is provided.
var SampleLines = []string{
	"2025-11-05T09:12:33,KA01AB1234,MG_Road_01,68,RED,PASS",
	"2025-11-05T09:13:10,KA01CD5678,MG_Road_01,55,GREEN,PASS",
	"2025-11-05T09:15:00,KA02EF9999,Outer_Ring_2,95,GREEN,PASS",
	"2025-11-05T09:16:20,KA01AB1234,School_Zone_A,45,GREEN,PASS",
}

// Render writes the per-vehicle violations report followed by the dashboard.
func Render(w io.Writer, rep *model.Report) {
	fmt.Fprintln(w, "=== Violations Report ===")
	for _, rec := range rep.Vehicles {
		fmt.Fprintf(w, "Vehicle: %s  | Total Fine: %s%d  | Violations: %d\n",
			rec.VehicleID, currency, rec.TotalFine, len(rec.Violations))
		for _, v := range rec.Violations {
			if v.Type == model.ViolationSpeeding {
				fmt.Fprintf(w, "  - %s | %s | SPEEDING by %d km/h -> Fine %s%d (%s)\n",
					v.Timestamp, v.Location, *v.Over, currency, v.Fine, v.Description)
			} else {
				fmt.Fprintf(w, "  - %s | %s | %s -> Fine %s%d (%s)\n",
					v.Timestamp, v.Location, v.Type, currency, v.Fine, v.Description)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "=== Dashboard ===")
	fmt.Fprintf(w, "Total vehicles with violations: %d\n", rep.Tally.VehicleCount)
	fmt.Fprintf(w, "Total fines collected: %s%d\n", currency, rep.Tally.TotalFine)
	for _, tc := range rep.Tally.TypeCounts {
		fmt.Fprintf(w, "  %s: %d\n", tc.Type, tc.Count)
	}
	fmt.Fprintln(w, "\nPer-vehicle summary:")
	for _, rec := range rep.Vehicles {
		fmt.Fprintf(w, "  %s: Violations=%d, TotalFine=%s%d\n",
			rec.VehicleID, len(rec.Violations), currency, rec.TotalFine)
	}
}

// RenderUsage writes the hint shown when standard input is empty.
func RenderUsage(w io.Writer) {
	fmt.Fprintln(w, "No input detected. Sample input (pipe these lines to the program):")
	fmt.Fprintln(w)
	for _, s := range SampleLines {
		fmt.Fprintln(w, s)
	}
}
