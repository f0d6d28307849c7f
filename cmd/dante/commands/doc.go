// Package commands defines the dante CLI and wires dependencies for subcommands.
//
// Commands
//
//   - company     register | login | list
//   - user        login | list | create | update | delete | passwd | avatar | me
//   - logout      Reset every stored session and cache
//   - whoami      Show the stored company, user and token state
//   - clients     list | add | update | rm
//   - products    list | show | add | update | rm
//   - categories  list | add | update | rm
//   - messages    conversation | send | read | rm
//   - tickets     list | open | update | close | rm
//   - chat        Ask the assistant a question
//
// # Implementation
//
// The root command loads configuration, builds a logger and the dependency
// graph (key-value backend, identity stores, API client, services) before any
// subcommand runs, so handlers share one app context with a configured HTTP
// timeout.
package commands
