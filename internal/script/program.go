// Package script runs the timed control programs of a scenario. A program
// plays the part of a processor running a user script: it owns a control
// context and locks the rover's wheel steering to a value.
package script

import (
	"fmt"

	"go-rover-autopilot/internal/component"
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/types"
	"go-rover-autopilot/internal/utils"
)

// Op is a program instruction.
type Op string

const (
	OpLock     Op = "lock"     // lock wheel steering to Value
	OpUnlock   Op = "unlock"   // release wheel steering
	OpThrottle Op = "throttle" // set manual main throttle
	OpEnd      Op = "end"      // end the program, releasing everything it holds
)

// Step is one instruction, executed once simulation time reaches At.
type Step struct {
	At       float64
	Op       Op
	Value    any
	Throttle float64
}

// Program is a control context bound to one processor part on one rover.
type Program struct {
	partID uint32
	rover  types.EntityID

	vessel    control.Vehicle
	pilot     *component.Pilot
	autopilot *component.Autopilot

	steps  []Step
	next   int
	locked any
	done   bool
}

var _ control.Context = (*Program)(nil)

// NewProgram creates a program running on part partID of a rover. Steps must
// be sorted by At.
func NewProgram(partID uint32, rover types.EntityID, vessel control.Vehicle,
	pilot *component.Pilot, autopilot *component.Autopilot, steps []Step) *Program {
	return &Program{
		partID:    partID,
		rover:     rover,
		vessel:    vessel,
		pilot:     pilot,
		autopilot: autopilot,
		steps:     steps,
	}
}

func (p *Program) ControlPartID() uint32    { return p.partID }
func (p *Program) Vehicle() control.Vehicle { return p.vessel }
func (p *Program) Rover() types.EntityID    { return p.rover }
func (p *Program) Done() bool               { return p.done }
func (p *Program) Locked() any              { return p.locked }
func (p *Program) String() string           { return fmt.Sprintf("program(part %d)", p.partID) }

// due returns the steps whose time has come, advancing the cursor.
func (p *Program) due(simTime float64) []Step {
	start := p.next
	for p.next < len(p.steps) && p.steps[p.next].At <= simTime {
		p.next++
	}
	return p.steps[start:p.next]
}

func (p *Program) exec(step Step) error {
	switch step.Op {
	case OpLock:
		p.locked = step.Value
		return p.refresh()
	case OpUnlock:
		p.locked = nil
		p.autopilot.WheelSteering.DisableControlFor(p)
	case OpThrottle:
		p.pilot.MainThrottle = utils.Clamp(step.Throttle, -1, 1)
	case OpEnd:
		p.terminate()
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

// refresh re-evaluates the locked value, as a lock expression is evaluated
// every tick. A failed evaluation drops the lock.
func (p *Program) refresh() error {
	if p.locked == nil {
		return nil
	}
	if err := p.autopilot.WheelSteering.UpdateValue(p.locked, p); err != nil {
		p.locked = nil
		return err
	}
	return nil
}

// terminate releases every parameter this program holds. Parameters held by
// other programs are left alone.
func (p *Program) terminate() {
	p.locked = nil
	for _, param := range p.autopilot.Parameters() {
		param.DisableControlFor(p)
	}
	p.done = true
}
