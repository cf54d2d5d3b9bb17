package audio

import (
	"sync"

	"github.com/simukka/ukg-math-adventure/common"
)

// Sequencer loops a Song on an Output. Each step emits that step's voices at
// the output's current time and re-arms itself one tick later.
type Sequencer struct {
	out   Output
	sched common.Scheduler
	song  *Song
	rng   *common.SeededRNG

	mu      sync.Mutex
	running bool
	step    int
	gen     uint64
	timer   common.Timer

	// OnStep, if set, is called after each step with its index. It runs with
	// the sequencer locked and must not call back into it.
	OnStep func(step int)
}

// NewSequencer creates an idle sequencer.
func NewSequencer(out Output, sched common.Scheduler, song *Song, rng *common.SeededRNG) *Sequencer {
	if rng == nil {
		rng = common.NewSeededRNG(1)
	}
	return &Sequencer{out: out, sched: sched, song: song, rng: rng}
}

// Start plays step 0 now and keeps stepping until Stop. Starting a running
// sequencer does nothing.
func (q *Sequencer) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.running = true
	q.step = 0
	q.gen++
	q.playLocked(q.gen)
}

// Stop cancels the pending step. Once Stop returns no further step runs.
// Events already handed to the output play out. Stopping an idle sequencer
// is a no-op.
func (q *Sequencer) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running {
		return
	}
	q.running = false
	q.gen++
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// Running reports whether a step is pending.
func (q *Sequencer) Running() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// Step returns the index of the next step to play.
func (q *Sequencer) Step() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.step
}

func (q *Sequencer) tick(gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running || gen != q.gen {
		return
	}
	q.playLocked(gen)
}

func (q *Sequencer) playLocked(gen uint64) {
	step := q.step
	for _, ev := range q.song.Events(step, q.out.Now(), q.rng.Uint32()) {
		q.out.Emit(ev)
	}
	q.step++
	q.timer = q.sched.AfterFunc(q.song.Tick, func() { q.tick(gen) })
	if q.OnStep != nil {
		q.OnStep(step)
	}
}
