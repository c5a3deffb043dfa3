// Package commands implements the playground CLI: console walkthroughs of the
// shelves, card games, catalog and vehicles, printed to stdout.
package commands
