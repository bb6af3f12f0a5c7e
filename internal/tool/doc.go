package tool

// Package tool provisions the external PartyPlanner64 patcher binary
// into the per-user config directory and runs it as a subprocess,
// hiding the wine compatibility shim used on non-Windows platforms.
