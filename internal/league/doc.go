// Package league drives the scrape pipeline across competitions.
//
// A Source describes one competition's stats page: where it lives,
// which table on the page to take, how wide the normalized table
// should be, and which columns are numeric. The Builder walks an
// ordered source list, runs fetch → extract → normalize per source,
// and concatenates the results into one combined table with each row
// tagged by its league label.
package league
