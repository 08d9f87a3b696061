// Package types defines the truck maintenance entities, the tire position
// sets per vehicle kind, and the standard errors returned by the store.
package types
