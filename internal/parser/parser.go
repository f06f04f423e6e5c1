package parser

import (
	"strconv"
	"strings"

	"traffic-engine/internal/model"
)

// Parse converts one comma-separated sensor line into an Event. It returns
// nil when the line has fewer than six fields or a non-numeric speed field;
// extra fields are ignored. Callers skip nil results silently.
func Parse(line string) *model.Event {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 6 {
		return nil
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	speed, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil
	}

	return &model.Event{
		Timestamp:   parts[0],
		VehicleID:   parts[1],
		Location:    parts[2],
		Speed:       speed,
		SignalState: strings.ToUpper(parts[4]),
		Action:      strings.ToUpper(parts[5]),
	}
}
