// Package render draws scene snapshots: Text for terminals and logs, PNG for
// saved images. Both share one palette and one glyph table so a saved image
// matches what the terminal viewer shows.
package render
