// Package dto contains the form payloads accepted by the site's actions and
// the ActionData returned when a submission is rejected.
//
// Parsing happens in two steps: presence of every expected field is checked
// first, then the values are whitespace-normalised and validated. All field
// errors are reported together.
package dto
