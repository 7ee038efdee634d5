package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. The yellow is the tape measure case, the cyan the ring.
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Warning      = lipgloss.Color("#EAB308") // Amber
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Tape Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Cyan
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Banner = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ArcadeYellow).
		Bold(true).
		Padding(0, 2)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	// Cell is an ouroboros ring cell. Variants mark the current cell, the
	// live tail, answered cells and expired ones.
	Cell = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgCard).
		Align(lipgloss.Center)

	CellActive = Cell.
			Foreground(BgDark).
			Background(ArcadeCyan).
			Bold(true)

	CellTail = Cell.
			Foreground(BgDark).
			Background(Accent).
			Bold(true)

	CellAnswered = Cell.
			Foreground(Success)

	CellExpired = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)
)
