// Package app wires configuration, logging, scenario loading and the search
// engine together. It either solves one board and prints the result,
// compares every algorithm on it, or serves the HTTP API.
package app
