package core

// Color is a foreground color for rendered cells. The platform layer maps
// these to terminal styles; core code only picks semantic colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray          // out-of-range cell
	ColorGreen         // interactable cell with token
	ColorYellow        // merge target (matches inventory)
	ColorCyan          // interactable empty cell (drop target)
	ColorMagenta       // player position
	ColorWhite
	ColorBrightYellow // flash highlight
	ColorRed          // invalid action flash
)
