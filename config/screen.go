package config

// Screen layout configuration
const (
	// Tile size in world units
	TileSize = 60

	// Level grid dimensions in tiles
	GridWidth  = 32
	GridHeight = 32

	// Visible arena in world units; the camera keeps the player at its center
	ArenaWidth  = 1366
	ArenaHeight = 768

	// Window dimensions in pixels, scaled to the arena by ebiten
	WindowWidth  = 1024
	WindowHeight = 576

	// Terminal front-end: world units per character cell
	TerminalCellWidth  = TileSize / 2
	TerminalCellHeight = TileSize
)

// GetScreenDimensions returns the logical screen dimensions
func GetScreenDimensions() (width, height int) {
	return ArenaWidth, ArenaHeight
}

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
