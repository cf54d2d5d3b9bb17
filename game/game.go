package game

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/ukg-math-adventure/audio"
	"github.com/simukka/ukg-math-adventure/common"
)

// SoundPlayer is what the game asks of the audio engine. *audio.AudioManager
// satisfies it; every call is fire-and-forget.
type SoundPlayer interface {
	PlayClick()
	PlayCorrect()
	PlayWrong()
	StartMusic()
}

// Game holds the complete game state.
type Game struct {
	mu sync.Mutex

	// Core state
	State    GameState
	Input    string
	Icon     Icon
	Message  string
	GameSeed uint32
	GameRNG  *common.SeededRNG

	interacted bool
	round      int // bumped by every transition that invalidates a pending feedback
	feedback   common.Timer

	// Collaborators
	Sound      SoundPlayer
	Encourager Encourager
	Speaker    Speaker
	Sched      common.Scheduler
	// Go runs provider round-trips off the event handler.
	Go func(func())

	// Audio
	Audio *audio.AudioManager

	// Rendering
	Canvas *js.Object
	Ctx    *js.Object
	Layout *Layout

	// Animation
	AnimationFrameID int
	LastFrameTime    float64

	StatsOverlay *StatsOverlay
}

// NewGame creates a new game instance with a first Addition question.
func NewGame() *Game {
	seed := common.NewSessionRNG()

	var sched common.Scheduler = common.RealScheduler{}
	if common.HasBrowser() {
		sched = common.BrowserScheduler{}
	}
	// Music draws from its own stream so questions replay from the seed alone.
	am := audio.NewAudioManager(common.NewSeededRNG(seed.Seed()^0x9e3779b9), sched)

	g := &Game{
		GameSeed:   seed.Seed(),
		GameRNG:    seed,
		Message:    GreetingMessage,
		Audio:      am,
		Sound:      am,
		Encourager: &HTTPEncourager{Endpoint: EncouragementPath},
		Speaker: &FallbackSpeaker{Speakers: []Speaker{
			&RemoteSpeaker{Endpoint: SpeechPath, Player: am},
			&BrowserSpeaker{},
		}},
		Sched:        sched,
		Go:           func(f func()) { go f() },
		Layout:       NewLayout(),
		StatsOverlay: NewStatsOverlay(),
	}
	g.StartNewQuestion(Addition)
	return g
}

// SetGameSeed re-seeds question generation and draws a fresh question.
func (g *Game) SetGameSeed(seed uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.GameSeed = seed
	g.GameRNG.SetSeed(seed)
	g.startNewQuestionLocked(g.State.Mode)
}

// GetGameSeed returns the current game seed.
func (g *Game) GetGameSeed() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.GameSeed
}

// View is a consistent copy of everything the screen shows.
type View struct {
	State   GameState
	Input   string
	Icon    Icon
	Message string
}

// View returns a snapshot for rendering.
func (g *Game) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return View{State: g.State, Input: g.Input, Icon: g.Icon, Message: g.Message}
}

// HandleInteraction marks a user gesture. The first one starts the
// background music, since browsers only allow audio after a gesture.
func (g *Game) HandleInteraction() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.firstInteractionLocked()
}

func (g *Game) firstInteractionLocked() {
	if g.interacted {
		return
	}
	g.interacted = true
	if g.Sound != nil {
		g.Sound.StartMusic()
	}
}

func (g *Game) playClickLocked() {
	if g.Sound != nil {
		g.Sound.PlayClick()
	}
}

// HandleNumberClick appends a digit to the answer, up to MaxInputDigits.
func (g *Game) HandleNumberClick(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.firstInteractionLocked()
	if g.State.FeedbackVisible || n < 0 || n > 9 {
		return
	}
	g.playClickLocked()
	if len(g.Input) < MaxInputDigits {
		g.Input += strconv.Itoa(n)
	}
}

// HandleClear empties the answer.
func (g *Game) HandleClear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.firstInteractionLocked()
	if g.State.FeedbackVisible {
		return
	}
	g.playClickLocked()
	g.Input = ""
}

// HandleBackspace drops the last digit of the answer.
func (g *Game) HandleBackspace() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.firstInteractionLocked()
	if g.State.FeedbackVisible || g.Input == "" {
		return
	}
	g.playClickLocked()
	g.Input = g.Input[:len(g.Input)-1]
}

// HandleCheck submits the typed answer. It does nothing while the answer is
// empty, like the disabled GO! button.
func (g *Game) HandleCheck() {
	g.mu.Lock()
	g.firstInteractionLocked()
	if g.Input == "" || g.State.FeedbackVisible {
		g.mu.Unlock()
		return
	}
	after := g.submitLocked(g.Input)
	g.mu.Unlock()
	g.Go(after)
}

// ChangeMode switches the operator mode and draws a new question.
func (g *Game) ChangeMode(m Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.firstInteractionLocked()
	g.playClickLocked()
	g.startNewQuestionLocked(m)
}

// SubmitAnswer grades input against the current question. Input that is not
// a number counts as a wrong answer.
func (g *Game) SubmitAnswer(input string) {
	g.mu.Lock()
	after := g.submitLocked(input)
	g.mu.Unlock()
	g.Go(after)
}

// submitLocked updates the score and returns the provider round-trip to run
// once the lock is released.
func (g *Game) submitLocked(input string) func() {
	answer, err := strconv.Atoi(strings.TrimSpace(input))
	correct := err == nil && answer == g.State.Question.Answer

	if g.Sound != nil {
		if correct {
			g.Sound.PlayCorrect()
		} else {
			g.Sound.PlayWrong()
		}
	}

	next := g.State
	next.Total++
	next.LastResult = ResultWrong
	if correct {
		next.Score++
		next.LastResult = ResultCorrect
	}
	next.FeedbackVisible = true
	g.State = next

	g.round++
	if g.feedback != nil {
		g.feedback.Stop()
		g.feedback = nil
	}
	round, score := g.round, next.Score
	Debug("Answer:", input, "Correct:", correct, "Score:", score, "Total:", next.Total)
	return func() { g.encourage(round, score, correct) }
}

// encourage fetches the message, shows it, arms the feedback timer and then
// speaks the message.
func (g *Game) encourage(round, score int, correct bool) {
	ctx, cancel := context.WithTimeout(context.Background(), ProviderTimeout)
	msg := GetEncouragement(ctx, g.Encourager, score, correct)
	cancel()

	g.mu.Lock()
	if round != g.round {
		g.mu.Unlock()
		return
	}
	g.Message = msg
	g.feedback = g.Sched.AfterFunc(FeedbackDelay, func() { g.finishFeedback(round, correct) })
	g.mu.Unlock()

	if g.Speaker == nil {
		return
	}
	ctx, cancel = context.WithTimeout(context.Background(), ProviderTimeout)
	defer cancel()
	if err := g.Speaker.Speak(ctx, msg); err != nil {
		Debug("speech skipped:", err.Error())
	}
}

// finishFeedback hides the overlay. A right answer moves on to a new
// question; a wrong one clears the input and keeps the question.
func (g *Game) finishFeedback(round int, correct bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if round != g.round {
		return
	}
	g.feedback = nil
	if correct {
		g.startNewQuestionLocked(g.State.Mode)
		return
	}
	next := g.State
	next.FeedbackVisible = false
	g.State = next
	g.Input = ""
}

// StartNewQuestion draws a question for mode and resets the round.
func (g *Game) StartNewQuestion(mode Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startNewQuestionLocked(mode)
}

func (g *Game) startNewQuestionLocked(mode Mode) {
	g.round++
	if g.feedback != nil {
		g.feedback.Stop()
		g.feedback = nil
	}
	g.State = GameState{
		Score:    g.State.Score,
		Total:    g.State.Total,
		Question: GenerateQuestion(mode, g.GameRNG),
		Mode:     mode,
	}
	g.Input = ""
	g.Icon = PickIcon(g.GameRNG)
}

// Start begins the render loop.
func (g *Game) Start() {
	Debug("Start! Seed:", g.GameSeed)
	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
	}
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()
}

// Stop halts rendering and releases the audio context.
func (g *Game) Stop() {
	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
		g.AnimationFrameID = 0
	}
	g.mu.Lock()
	g.round++
	if g.feedback != nil {
		g.feedback.Stop()
		g.feedback = nil
	}
	g.mu.Unlock()
	if g.Audio != nil {
		g.Audio.Close()
	}
}
