// ABOUTME: Version constants for the asset tools
// ABOUTME: Reported by every command's -version flag
package version

const (
	// Version is the release of the asset toolset
	Version = "0.3.0"

	// Product names the toolset in progress output
	Product = "TicTacTech Asset Tools"

	// Game is the game the assets are generated for
	Game = "TicTacTech"
)

// String returns the product and version on one line
func String() string {
	return Product + " " + Version
}
