// Package match provides the match entity for the Olympic hockey calendar
// generator, the team code tables used for Czech display names, and the
// merge step that overlays scraped partial records onto the static fixture
// skeleton.
//
// Match IDs are deterministic, derived from category, stage and slot, so a
// playoff slot keeps the same calendar UID from its placeholder form through
// its resolved and finished forms.
package match
