// Package catalog generates the fixed in-memory result dataset.
//
// Every record is derived from its 1-based index and the Settings constants:
// the topic is Topics[i mod len(Topics)], the URL is the topic's base resource
// plus a "#guide-i" fragment, the site is that base's host, and the color is
// Palette[i mod len(Palette)]. Topics without a mapped resource use Fallback.
//
// Generate has no randomness and no I/O, so two calls with equal Settings
// return equal slices.
package catalog
