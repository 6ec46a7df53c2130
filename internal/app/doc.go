// Package app is the composition root for searchly.
//
// Run loads config.toml, applies command-line overrides, opens the log file,
// reads display preferences, generates the record catalog and then blocks in
// the Bubble Tea program until the user quits or the context is cancelled.
//
// Fatal errors (returned from Run):
//   - Config file present but invalid
//   - Log file cannot be opened
//
// Everything after startup is recoverable: a failed prefs save or clipboard
// write is logged and shown in the footer.
package app
