package engine

import (
	"traffic-engine/internal/model"
	"traffic-engine/internal/parser"
	"traffic-engine/internal/rules"
)

// Process folds a batch of raw sensor lines into a report. Malformed lines
// are skipped without being counted. Vehicles appear in order of their first
// violation; violation types are tallied in order of first occurrence.
func Process(lines []string) *model.Report {
	vehicles := map[string]*model.VehicleRecord{}
	var vehicleOrder []string
	typeIndex := map[string]int{}
	var tally model.GlobalTally

	for _, line := range lines {
		evt := parser.Parse(line)
		if evt == nil {
			continue
		}

		violations := rules.Evaluate(evt)
		if len(violations) == 0 {
			continue
		}

		rec, ok := vehicles[evt.VehicleID]
		if !ok {
			rec = &model.VehicleRecord{VehicleID: evt.VehicleID}
			vehicles[evt.VehicleID] = rec
			vehicleOrder = append(vehicleOrder, evt.VehicleID)
		}

		for _, v := range violations {
			rec.Violations = append(rec.Violations, v)
			rec.TotalFine += v.Fine
			tally.TotalFine += v.Fine
			if i, seen := typeIndex[v.Type]; seen {
				tally.TypeCounts[i].Count++
			} else {
				typeIndex[v.Type] = len(tally.TypeCounts)
				tally.TypeCounts = append(tally.TypeCounts, model.TypeCount{Type: v.Type, Count: 1})
			}
		}
	}

	tally.VehicleCount = len(vehicleOrder)

	rep := &model.Report{Tally: tally}
	for _, id := range vehicleOrder {
		rep.Vehicles = append(rep.Vehicles, vehicles[id])
	}
	return rep
}
