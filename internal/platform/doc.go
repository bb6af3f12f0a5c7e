package platform

// Package platform holds small filesystem helpers shared by the
// services: directory creation, file copy, and tolerant removal.
