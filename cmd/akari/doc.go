// Package main hosts the akari CLI entrypoint and command graph.
//
// Each device command opens one UDP session, sends a single command to the
// LED controller, and prints the decoded reply as "Received <Response>".
// listen subscribes to the controller's colour updates and prints them until
// interrupted. Configuration resolution, the device address, and logger
// setup live in commandContext so subcommands only describe what to send.
package main
