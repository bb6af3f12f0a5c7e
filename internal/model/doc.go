package model

// Package model defines domain data structures used across the app:
// catalog projects, released file versions, patch jobs, and status enums.
// Structures are designed for direct binding in the UI and explicit
// state transitions.
