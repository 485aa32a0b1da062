// Package scraper provides HTTP fetching and HTML parsing for the Olympic
// hockey tournament schedule pages.
//
// Fetching retries transient failures with exponential backoff inside a
// single run; parsing tries the vevent summary rows first and falls back to
// generic wikitables and finally a plain-text scan, so the run survives
// markup drift as long as some schedule structure remains recognizable.
package scraper
