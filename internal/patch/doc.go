package patch

// Package patch implements the multi-stage patch pipeline: resolve the
// latest board version, provision the external patcher, download the
// board file, prompt for a ROM, run the tool, and write the patched
// output where the user asks. It also implements the plain board-file
// download flow. Jobs run off the UI thread and report progress through
// an update callback.
