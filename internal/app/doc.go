// Package app wires application dependencies for the CLI.
//
// It loads Config from flags, environment and an optional config file, then
// builds the key-value backend, identity stores, API client and high-level
// services, exposing them via the App struct for commands to use.
package app
