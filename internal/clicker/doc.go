// Package clicker holds the clicking engine: a background loop that reads the
// pointer, stops when it leaves the configured region or the repeat bound is
// reached, and otherwise clicks at the configured rate. Hosts drive it only
// through Start, Stop, Toggle, UpdateConfig and IsRunning.
package clicker
