package game

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gridterrain/internal/config"
	"gridterrain/internal/profiling"
)

// maxPhysicsSteps caps catch-up work in a single frame.
const maxPhysicsSteps = 16

// accumulator slack so float drift does not skip a due tick
const tickEpsilon = 1e-9

// Node receives the host callbacks the loop drives.
type Node interface {
	OnTick(dt float64)
	OnPhysicsTick(dt float64)
	OnTimer()
}

// Loop stands in for the engine main loop: a variable frame tick, a fixed
// physics step and a repeating timer.
type Loop struct {
	nodes      []Node
	endOfFrame []func()

	physicsStep   float64
	timerInterval float64
	physicsAcc    float64
	timerAcc      float64

	frames       int
	physicsTicks int
	timerTicks   int

	limiter *FPSLimiter
	log     *slog.Logger
}

// NewLoop builds a loop from cfg, falling back to 60 Hz physics and a one
// second timer for non-positive values.
func NewLoop(cfg config.LoopConfig, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rate := cfg.PhysicsRate
	if rate <= 0 {
		rate = 60
	}
	interval := cfg.TimerInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Loop{
		physicsStep:   1 / rate,
		timerInterval: interval.Seconds(),
		limiter:       NewFPSLimiter(cfg.FrameRate),
		log:           log,
	}
}

// Add appends nodes; callbacks run in insertion order.
func (l *Loop) Add(nodes ...Node) {
	l.nodes = append(l.nodes, nodes...)
}

// OnEndOfFrame registers fn to run after every frame, e.g. input edge reset.
func (l *Loop) OnEndOfFrame(fn func()) {
	l.endOfFrame = append(l.endOfFrame, fn)
}

// Step advances one frame of dt seconds.
func (l *Loop) Step(dt float64) {
	defer profiling.Track("game.Step")()

	for _, n := range l.nodes {
		n.OnTick(dt)
	}

	l.physicsAcc += dt
	steps := 0
	for l.physicsAcc+tickEpsilon >= l.physicsStep {
		if steps == maxPhysicsSteps {
			dropped := int(l.physicsAcc / l.physicsStep)
			l.log.Warn("physics falling behind", "dropped_steps", dropped)
			l.physicsAcc = 0
			break
		}
		for _, n := range l.nodes {
			n.OnPhysicsTick(l.physicsStep)
		}
		l.physicsAcc -= l.physicsStep
		l.physicsTicks++
		steps++
	}

	// Missed intervals collapse into a single fire.
	l.timerAcc += dt
	if l.timerAcc+tickEpsilon >= l.timerInterval {
		due := int((l.timerAcc + tickEpsilon) / l.timerInterval)
		if due > 1 {
			l.log.Debug("timer intervals skipped", "skipped", due-1)
		}
		for _, n := range l.nodes {
			n.OnTimer()
		}
		l.timerAcc = max(l.timerAcc-float64(due)*l.timerInterval, 0)
		l.timerTicks++
	}

	for _, fn := range l.endOfFrame {
		fn()
	}
	l.frames++
}

// Run steps paced frames with wall-clock dt until ctx is done or, when
// frames is positive, that many frames have run.
func (l *Loop) Run(ctx context.Context, frames int) error {
	last := time.Now()
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		now := time.Now()
		l.Step(now.Sub(last).Seconds())
		last = now
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// PhysicsStep is the fixed physics dt in seconds.
func (l *Loop) PhysicsStep() float64 { return l.physicsStep }

// Frames, PhysicsTicks and TimerTicks count callbacks run so far.
func (l *Loop) Frames() int       { return l.frames }
func (l *Loop) PhysicsTicks() int { return l.physicsTicks }
func (l *Loop) TimerTicks() int   { return l.timerTicks }
