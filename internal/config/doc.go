// Package config loads searchly's startup configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/searchly/config.toml
//  3. If the file doesn't exist, use the built-in defaults
//  4. Missing, empty or non-positive fields keep their defaults
//
// # TOML Format
//
//	total     = 150
//	page_size = 10
//	log_file  = "~/.local/state/searchly/searchly.log"
//	log_level = "info"   # debug, info, warn, error
//
// Values are read once at startup. The dataset size and page size stay fixed
// for the whole session; nothing here is reloaded while the UI runs.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML, and unknown log
// levels. A missing file is not an error.
package config
