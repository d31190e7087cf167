// Package cli wires the scrape pipeline into the leaguetab command.
//
// The root command runs the whole pipeline once: squad stats and
// standings for every configured league, derived metrics, and the two
// CSV artifacts. Flags override the politeness delay, base URL, and
// output directory; the same settings can come from a .env file.
package cli
