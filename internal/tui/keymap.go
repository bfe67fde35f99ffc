package tui

// Key binding constants used in handleKey.
const (
	KeyQuit      = "ctrl+c"
	KeyEscape    = "esc"
	KeyPrevDay   = "left"
	KeyNextDay   = "right"
	KeyToday     = "ctrl+t"
	KeyStart     = "enter"
	KeyStop      = "ctrl+s"
	KeyBackspace = "backspace"
)
