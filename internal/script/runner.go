package script

import (
	"log"

	"go-rover-autopilot/internal/event"
)

// Runner is the script execution pass. It runs before the control input
// collection pass on every tick.
type Runner struct {
	programs   []*Program
	dispatcher *event.Dispatcher
	logger     *log.Logger
}

func NewRunner(dispatcher *event.Dispatcher, logger *log.Logger) *Runner {
	return &Runner{dispatcher: dispatcher, logger: logger}
}

func (r *Runner) Add(p *Program) {
	r.programs = append(r.programs, p)
}

func (r *Runner) Programs() []*Program {
	return r.programs
}

// Update executes due steps and re-evaluates locks. A failing step is
// reported and skipped; the program keeps running.
func (r *Runner) Update(simTime float64) {
	for _, p := range r.programs {
		if p.done {
			continue
		}

		stepped := false
		for _, step := range p.due(simTime) {
			stepped = stepped || step.Op == OpLock
			if err := p.exec(step); err != nil {
				r.fail(p, err)
			}
			if p.done {
				r.logger.Printf("%s on rover %d ended at t=%.2f", p, p.rover, simTime)
				r.dispatcher.Dispatch(event.Event{
					Type: event.ProgramEnded,
					Data: event.ProgramData{Rover: p.rover, PartID: p.partID},
				})
				break
			}
		}

		if !p.done && !stepped {
			if err := p.refresh(); err != nil {
				r.fail(p, err)
			}
		}
	}
}

// Terminate ends every running program, as on a processor shutdown.
func (r *Runner) Terminate() {
	for _, p := range r.programs {
		if !p.done {
			p.terminate()
		}
	}
}

func (r *Runner) fail(p *Program, err error) {
	r.logger.Printf("%s on rover %d: %v", p, p.rover, err)
	r.dispatcher.Dispatch(event.Event{
		Type: event.ProgramError,
		Data: event.ProgramData{Rover: p.rover, PartID: p.partID, Err: err},
	})
}
