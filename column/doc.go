// Package column provides positional storage for table-shaped data.
//
// A Column is a dense array addressed by Position. IDColumn stores an
// optional id per row and prunes dead ones lazily. Link stores an optional
// id of one arena per owner of another, and Indices maps owner slots to
// values such as the row an entity lives in.
package column
