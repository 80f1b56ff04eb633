// Package internal implements the friendlyid engine.
//
// Import "github.com/dmitrymomot/friendlyid" instead, which re-exports the
// public API.
package internal
