package game

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/simukka/ukg-math-adventure/common"
)

type fakeSound struct {
	clicks, corrects, wrongs, music int
}

func (s *fakeSound) PlayClick()   { s.clicks++ }
func (s *fakeSound) PlayCorrect() { s.corrects++ }
func (s *fakeSound) PlayWrong()   { s.wrongs++ }
func (s *fakeSound) StartMusic()  { s.music++ }

type fakeEncourager struct {
	text  string
	err   error
	calls int
	score int
}

func (e *fakeEncourager) Encourage(ctx context.Context, score int, correct bool) (string, error) {
	e.calls++
	e.score = score
	return e.text, e.err
}

type fakeSpeaker struct {
	mu   sync.Mutex
	said []string
	err  error
}

func (s *fakeSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.said = append(s.said, text)
	return s.err
}

type testGame struct {
	*Game
	sound   *fakeSound
	enc     *fakeEncourager
	speaker *fakeSpeaker
	sched   *common.ManualScheduler
}

// newTestGame builds a game whose provider round-trips run inline.
func newTestGame() *testGame {
	tg := &testGame{
		sound:   &fakeSound{},
		enc:     &fakeEncourager{text: "Woohoo!"},
		speaker: &fakeSpeaker{},
		sched:   common.NewManualScheduler(),
	}
	tg.Game = &Game{
		GameRNG:      common.NewSeededRNG(42),
		GameSeed:     42,
		Message:      GreetingMessage,
		Sound:        tg.sound,
		Encourager:   tg.enc,
		Speaker:      tg.speaker,
		Sched:        tg.sched,
		Go:           func(f func()) { f() },
		Layout:       NewLayout(),
		StatsOverlay: NewStatsOverlay(),
	}
	tg.StartNewQuestion(Addition)
	return tg
}

func TestNewGame_Defaults(t *testing.T) {
	g := NewGame()

	if g.Message != GreetingMessage {
		t.Errorf("Expected greeting %q, got %q", GreetingMessage, g.Message)
	}
	if g.State.Mode != Addition {
		t.Errorf("Expected Addition mode, got %s", g.State.Mode)
	}
	if g.State.Question.Op != Plus {
		t.Errorf("Expected first question to be addition, got %+v", g.State.Question)
	}
	if g.State.Score != 0 || g.State.Total != 0 {
		t.Errorf("Expected zero score, got %d/%d", g.State.Score, g.State.Total)
	}
	if g.Audio == nil || g.Sound == nil {
		t.Error("Expected audio to be wired")
	}
	if g.GameSeed != g.GameRNG.Seed() {
		t.Errorf("Expected GameSeed %d to match RNG seed %d", g.GameSeed, g.GameRNG.Seed())
	}
}

func TestSubmitAnswer_AdditionScenario(t *testing.T) {
	g := newTestGame()
	g.State.Question = GenerateQuestion(Addition, &scriptedDrawer{ints: []int{3, 5}})

	g.SubmitAnswer("8")

	if g.State.Score != 1 || g.State.Total != 1 {
		t.Errorf("Expected score 1/1, got %d/%d", g.State.Score, g.State.Total)
	}
	if g.State.LastResult != ResultCorrect {
		t.Errorf("Expected ResultCorrect, got %d", g.State.LastResult)
	}
	if g.sound.corrects != 1 || g.sound.wrongs != 0 {
		t.Errorf("Expected 1 correct sound, got %d correct %d wrong", g.sound.corrects, g.sound.wrongs)
	}
}

func TestSubmitAnswer_SubtractionScenario(t *testing.T) {
	g := newTestGame()
	g.ChangeMode(Subtraction)
	g.State.Question = GenerateQuestion(Subtraction, &scriptedDrawer{ints: []int{2, 7}})

	g.SubmitAnswer("5")

	if g.State.LastResult != ResultCorrect || g.State.Score != 1 {
		t.Errorf("Expected 7 - 2 = 5 to be correct, got result %d score %d", g.State.LastResult, g.State.Score)
	}
}

func TestSubmitAnswer_WrongKeepsScore(t *testing.T) {
	g := newTestGame()
	answer := g.State.Question.Answer

	g.SubmitAnswer("99")
	if answer == 99 {
		t.Fatal("Answer can never be 99")
	}

	if g.State.Score != 0 || g.State.Total != 1 {
		t.Errorf("Expected score 0/1, got %d/%d", g.State.Score, g.State.Total)
	}
	if g.State.LastResult != ResultWrong {
		t.Errorf("Expected ResultWrong, got %d", g.State.LastResult)
	}
	if g.sound.wrongs != 1 {
		t.Errorf("Expected 1 wrong sound, got %d", g.sound.wrongs)
	}
}

func TestSubmitAnswer_UnparsableIsMiss(t *testing.T) {
	g := newTestGame()

	for _, input := range []string{"", "abc", "1.5"} {
		g.SubmitAnswer(input)
	}
	if g.State.Score != 0 || g.State.Total != 3 {
		t.Errorf("Expected 3 misses, got %d/%d", g.State.Score, g.State.Total)
	}
}

func TestCorrectAnswer_AdvancesAfterFeedback(t *testing.T) {
	g := newTestGame()
	g.SubmitAnswer(strconv.Itoa(g.State.Question.Answer))

	if !g.State.FeedbackVisible {
		t.Fatal("Expected feedback overlay to be visible")
	}
	if g.Message != "Woohoo!" {
		t.Errorf("Expected provider message, got %q", g.Message)
	}
	if g.enc.score != 1 {
		t.Errorf("Expected provider to see score 1, got %d", g.enc.score)
	}

	g.sched.Advance(FeedbackDelay - time.Millisecond)
	if !g.State.FeedbackVisible {
		t.Fatal("Expected feedback to stay up until the delay passes")
	}

	g.sched.Advance(time.Millisecond)
	if g.State.FeedbackVisible {
		t.Error("Expected feedback to be hidden")
	}
	if g.State.LastResult != ResultNone {
		t.Errorf("Expected fresh question to reset the result, got %d", g.State.LastResult)
	}
	if g.Input != "" {
		t.Errorf("Expected input to be cleared, got %q", g.Input)
	}
	if g.State.Score != 1 || g.State.Total != 1 {
		t.Errorf("Expected score to carry over, got %d/%d", g.State.Score, g.State.Total)
	}
}

func TestWrongAnswer_KeepsQuestion(t *testing.T) {
	g := newTestGame()
	q := g.State.Question
	g.Input = "99"

	g.HandleCheck()
	if g.Message != "Woohoo!" {
		t.Errorf("Expected provider message, got %q", g.Message)
	}

	g.sched.Advance(FeedbackDelay)
	if g.State.FeedbackVisible {
		t.Error("Expected feedback to be hidden")
	}
	if g.State.Question != q {
		t.Errorf("Expected same question %+v, got %+v", q, g.State.Question)
	}
	if g.Input != "" {
		t.Errorf("Expected input to be cleared, got %q", g.Input)
	}
	if g.State.LastResult != ResultWrong {
		t.Errorf("Expected last result to stay wrong, got %d", g.State.LastResult)
	}
}

func TestEncouragementFailure_UsesFallback(t *testing.T) {
	g := newTestGame()
	g.enc.err = errors.New("provider down")

	g.SubmitAnswer(strconv.Itoa(g.State.Question.Answer))
	if g.Message != FallbackCorrect {
		t.Errorf("Expected %q, got %q", FallbackCorrect, g.Message)
	}
	g.sched.Advance(FeedbackDelay)

	g.SubmitAnswer("99")
	if g.Message != FallbackWrong {
		t.Errorf("Expected %q, got %q", FallbackWrong, g.Message)
	}
	if g.State.Score != 1 || g.State.Total != 2 {
		t.Errorf("Expected scoring to be unaffected, got %d/%d", g.State.Score, g.State.Total)
	}
}

func TestEncouragement_IsSpoken(t *testing.T) {
	g := newTestGame()
	g.speaker.err = ErrNoSpeech

	g.SubmitAnswer("99")
	if len(g.speaker.said) != 1 || g.speaker.said[0] != "Woohoo!" {
		t.Errorf("Expected message to be spoken once, got %v", g.speaker.said)
	}
	if g.sched.Pending() != 1 {
		t.Errorf("Expected speech failure not to affect the feedback timer, got %d", g.sched.Pending())
	}
}

func TestHandleNumberClick_LimitsDigits(t *testing.T) {
	g := newTestGame()

	g.HandleNumberClick(1)
	g.HandleNumberClick(2)
	g.HandleNumberClick(3)

	if g.Input != "12" {
		t.Errorf("Expected input 12, got %q", g.Input)
	}
	if g.sound.clicks != 3 {
		t.Errorf("Expected 3 clicks, got %d", g.sound.clicks)
	}
}

func TestFirstInteraction_StartsMusicOnce(t *testing.T) {
	g := newTestGame()
	if g.sound.music != 0 {
		t.Fatalf("Expected no music before a gesture, got %d", g.sound.music)
	}

	g.HandleNumberClick(4)
	g.HandleClear()
	g.ChangeMode(Mixed)
	g.HandleInteraction()

	if g.sound.music != 1 {
		t.Errorf("Expected music to start once, got %d", g.sound.music)
	}
}

func TestHandleCheck_IgnoresEmptyInput(t *testing.T) {
	g := newTestGame()

	g.HandleCheck()
	if g.State.Total != 0 || g.State.FeedbackVisible {
		t.Errorf("Expected empty check to be ignored, got total %d", g.State.Total)
	}
	if g.sound.music != 1 {
		t.Errorf("Expected the gesture to still start music, got %d", g.sound.music)
	}
}

func TestHandleClearAndBackspace(t *testing.T) {
	g := newTestGame()
	g.HandleNumberClick(4)
	g.HandleNumberClick(2)

	g.HandleBackspace()
	if g.Input != "4" {
		t.Errorf("Expected 4 after backspace, got %q", g.Input)
	}
	g.HandleClear()
	if g.Input != "" {
		t.Errorf("Expected empty input after clear, got %q", g.Input)
	}
	g.HandleBackspace()
	if g.sound.clicks != 4 {
		t.Errorf("Expected backspace on empty input to stay silent, got %d clicks", g.sound.clicks)
	}
}

func TestKeypad_IgnoredDuringFeedback(t *testing.T) {
	g := newTestGame()
	g.SubmitAnswer("99")

	g.HandleNumberClick(5)
	g.HandleClear()
	g.Input = "5"
	g.HandleCheck()

	if g.State.Total != 1 {
		t.Errorf("Expected check during feedback to be ignored, got total %d", g.State.Total)
	}
	if g.sound.clicks != 0 {
		t.Errorf("Expected no clicks during feedback, got %d", g.sound.clicks)
	}
}

func TestChangeMode_SupersedesPendingAdvance(t *testing.T) {
	g := newTestGame()
	g.SubmitAnswer(strconv.Itoa(g.State.Question.Answer))
	if g.sched.Pending() != 1 {
		t.Fatalf("Expected a pending advance, got %d", g.sched.Pending())
	}

	g.ChangeMode(Subtraction)
	if g.sched.Pending() != 0 {
		t.Errorf("Expected advance to be cancelled, got %d pending", g.sched.Pending())
	}
	if g.State.FeedbackVisible {
		t.Error("Expected feedback to be cleared by the new question")
	}
	q := g.State.Question

	g.sched.Advance(time.Minute)
	if g.State.Question != q || g.State.Mode != Subtraction {
		t.Errorf("Expected question to stay %+v, got %+v", q, g.State.Question)
	}
	if g.State.Score != 1 {
		t.Errorf("Expected score to survive a mode change, got %d", g.State.Score)
	}
	if g.sound.clicks != 1 {
		t.Errorf("Expected mode change to click, got %d", g.sound.clicks)
	}
}

func TestLateEncouragement_IsDropped(t *testing.T) {
	g := newTestGame()
	var pending func()
	g.Go = func(f func()) { pending = f }

	g.SubmitAnswer("99")
	g.ChangeMode(Mixed)
	pending()

	if g.Message != GreetingMessage {
		t.Errorf("Expected stale message to be dropped, got %q", g.Message)
	}
	if g.sched.Pending() != 0 {
		t.Errorf("Expected no feedback timer for a stale round, got %d", g.sched.Pending())
	}
}

func TestSetGameSeed_Replays(t *testing.T) {
	g := newTestGame()
	g.SetGameSeed(1234)
	first := g.State.Question
	icon := g.Icon

	g.SetGameSeed(1234)
	if g.State.Question != first || g.Icon != icon {
		t.Errorf("Expected seed to replay %+v %s, got %+v %s", first, icon, g.State.Question, g.Icon)
	}
	if g.GetGameSeed() != 1234 {
		t.Errorf("Expected seed 1234, got %d", g.GetGameSeed())
	}
}

func TestGameState_Stars(t *testing.T) {
	tests := []struct {
		score, stars int
	}{
		{0, 0}, {3, 3}, {5, 0}, {7, 2},
	}
	for _, tt := range tests {
		if got := (GameState{Score: tt.score}).Stars(); got != tt.stars {
			t.Errorf("Expected %d stars for score %d, got %d", tt.stars, tt.score, got)
		}
	}
}

func TestGameState_Accuracy(t *testing.T) {
	if acc := (GameState{}).Accuracy(); acc != 0 {
		t.Errorf("Expected 0 with no answers, got %f", acc)
	}
	if acc := (GameState{Score: 3, Total: 4}).Accuracy(); acc != 0.75 {
		t.Errorf("Expected 0.75, got %f", acc)
	}
}

func TestView_Snapshot(t *testing.T) {
	g := newTestGame()
	g.HandleNumberClick(6)
	v := g.View()

	g.HandleNumberClick(1)
	if v.Input != "6" {
		t.Errorf("Expected snapshot to keep 6, got %q", v.Input)
	}
	if v.Message != GreetingMessage || v.Icon == "" {
		t.Errorf("Expected message and icon in view, got %q %q", v.Message, v.Icon)
	}
}
