package game

import "time"

// Constants for game configuration
const (
	WIDTH         = 480
	HEIGHT        = 860
	FrameDuration = 33.33 // ~30 FPS
)

// Question constants
const (
	MinOperand     = 1
	MaxOperand     = 9
	MaxInputDigits = 2
	StarsPerRow    = 5
)

// Timing
const (
	// FeedbackDelay is how long the result overlay stays up.
	FeedbackDelay = 2500 * time.Millisecond
	// ProviderTimeout bounds each encouragement or speech request.
	ProviderTimeout = 8 * time.Second
)

// Player-facing text
const (
	GreetingMessage = "Hi! Let's play math!"
	FallbackCorrect = "Great job!"
	FallbackWrong   = "Let's try again!"

	CorrectTitle    = "CORRECT!"
	CorrectSubtitle = "You are a superstar!"
	WrongTitle      = "TRY AGAIN"
	WrongSubtitle   = "Count them slowly!"
)

// Provider endpoints, relative to the page.
const (
	EncouragementPath = "/api/encouragement"
	SpeechPath        = "/api/speech"
)
