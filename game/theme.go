package game

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Page
	BackgroundColor string

	// Header
	HeaderColor    string
	TitleColor     string
	ScorePillColor string
	ScoreTextColor string
	StarOnAlpha    float64
	StarOffAlpha   float64
	HeaderShadow   string
	HeaderRadius   float64

	// Mode selector
	ModeActiveColor   string
	ModeActiveText    string
	ModeInactiveColor string
	ModeInactiveText  string

	// Message bubble
	BubbleColor  string
	BubbleBorder string
	BubbleText   string

	// Question
	Num1Color       string
	Num2Color       string
	OperatorColor   string
	PlusAidColor    string
	MinusAidColor   string
	Num1AidColor    string
	AidBorderColor  string
	PromptColor     string
	AnswerBoxColor  string
	AnswerBoxBorder string
	AnswerColor     string

	// Keypad
	PadBackground   string
	KeyColor        string
	KeyText         string
	KeyShadow       string
	ClearColor      string
	ClearShadow     string
	CheckColor      string
	CheckShadow     string
	CheckDisabled   string
	KeyRadius       float64
	KeyShadowOffset float64

	// Feedback overlay
	OverlayColor     string
	CorrectColor     string
	WrongColor       string
	OverlayTextColor string
	CorrectEmoji     string
	WrongEmoji       string

	// Fonts
	FontFamily   string
	TitleFont    string
	ScoreFont    string
	ModeFont     string
	BubbleFont   string
	NumberFont   string
	OperatorFont string
	IconFont     string
	PromptFont   string
	AnswerFont   string
	KeyFont      string
	OverlayEmoji string
	OverlayTitle string
	OverlayText  string
}{
	BackgroundColor: "#ffffff",

	HeaderColor:    "#facc15",
	TitleColor:     "#ffffff",
	ScorePillColor: "#ffffff",
	ScoreTextColor: "#ca8a04",
	StarOnAlpha:    1.0,
	StarOffAlpha:   0.3,
	HeaderShadow:   "rgba(0, 0, 0, 0.15)",
	HeaderRadius:   24,

	ModeActiveColor:   "#3b82f6",
	ModeActiveText:    "#ffffff",
	ModeInactiveColor: "#f3f4f6",
	ModeInactiveText:  "#6b7280",

	BubbleColor:  "#eff6ff",
	BubbleBorder: "#bfdbfe",
	BubbleText:   "#1d4ed8",

	Num1Color:       "#2563eb",
	Num2Color:       "#ef4444",
	OperatorColor:   "#9ca3af",
	Num1AidColor:    "rgba(59, 130, 246, 0.2)",
	PlusAidColor:    "rgba(239, 68, 68, 0.2)",
	MinusAidColor:   "rgba(249, 115, 22, 0.2)",
	AidBorderColor:  "rgba(0, 0, 0, 0.15)",
	PromptColor:     "#9ca3af",
	AnswerBoxColor:  "#f3f4f6",
	AnswerBoxBorder: "#d1d5db",
	AnswerColor:     "#16a34a",

	PadBackground:   "#f9fafb",
	KeyColor:        "#ffffff",
	KeyText:         "#2563eb",
	KeyShadow:       "#e5e7eb",
	ClearColor:      "#f87171",
	ClearShadow:     "#dc2626",
	CheckColor:      "#22c55e",
	CheckShadow:     "#15803d",
	CheckDisabled:   "#d1d5db",
	KeyRadius:       16,
	KeyShadowOffset: 4,

	OverlayColor:     "rgba(255, 255, 255, 0.9)",
	CorrectColor:     "#22c55e",
	WrongColor:       "#f97316",
	OverlayTextColor: "#4b5563",
	CorrectEmoji:     "🥳",
	WrongEmoji:       "🤔",

	FontFamily:   "'Comic Sans MS', 'Trebuchet MS', sans-serif",
	TitleFont:    "900 26px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	ScoreFont:    "bold 18px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	ModeFont:     "bold 14px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	BubbleFont:   "500 16px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	NumberFont:   "900 64px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	OperatorFont: "900 40px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	IconFont:     "28px sans-serif",
	PromptFont:   "bold 22px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	AnswerFont:   "900 44px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	KeyFont:      "bold 24px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	OverlayEmoji: "120px sans-serif",
	OverlayTitle: "900 40px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
	OverlayText:  "22px 'Comic Sans MS', 'Trebuchet MS', sans-serif",
}
