// Package pipeline drives a full rename pass: discover candidate files,
// run their names through the operation chain, resolve collisions, show the
// preview, and only when asked commit the renames and journal them.
package pipeline
