package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RoverTelemetry is a snapshot of one rover at the current tick.
type RoverTelemetry struct {
	Name        string
	Lat, Lng    float64
	Heading     float64
	Speed       float64
	WheelSteer  float64
	Throttle    float64
	Autopilot   bool
	Bearing     float64
	ControlPart uint32
}

// Telemetry snapshots every rover in creation order.
func (s *Sim) Telemetry() []RoverTelemetry {
	ids := s.ECS.RoverIDs()
	out := make([]RoverTelemetry, 0, len(ids))
	for _, id := range ids {
		t := RoverTelemetry{Name: s.ECS.Rovers[id].Name}
		if pos, ok := s.ECS.Positions[id]; ok {
			t.Lat, t.Lng = pos.Lat, pos.Lng
		}
		if m, ok := s.ECS.Motions[id]; ok {
			t.Heading, t.Speed = m.Heading, m.Speed
		}
		if p, ok := s.ECS.Pilots[id]; ok {
			t.WheelSteer, t.Throttle = p.Applied.WheelSteer, p.Applied.MainThrottle
		}
		if ap, ok := s.ECS.Autopilots[id]; ok {
			t.Autopilot = ap.WheelSteering.Enabled()
			t.Bearing = ap.WheelSteering.Bearing()
			t.ControlPart = ap.WheelSteering.ControlPartID()
		}
		out = append(out, t)
	}
	return out
}

// WriteTelemetry prints a table of the current telemetry.
func (s *Sim) WriteTelemetry(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "t=%.2f\nROVER\tLAT\tLNG\tHDG\tSPD\tSTEER\tTHR\tAP\tBRG\tPART\n", s.ECS.SimTime)
	for _, t := range s.Telemetry() {
		fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%.1f\t%.2f\t%+.2f\t%+.2f\t%v\t%+.0f\t%d\n",
			t.Name, t.Lat, t.Lng, t.Heading, t.Speed, t.WheelSteer, t.Throttle, t.Autopilot, t.Bearing, t.ControlPart)
	}
	return tw.Flush()
}
