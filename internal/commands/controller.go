// Package commands contains the CLI commands for gomqlet: edit, check,
// and introspect, wired the same Controller+Flags way the teacher's
// commands package wires Dev/Build/Deploy.
package commands

// Flags holds the global CLI flags threaded into every command.
type Flags struct {
	LogLevel string
}

// Controller is the receiver every command method hangs off, grouping
// them the way the teacher's Controller groups Dev/Build/Deploy.
type Controller struct {
	Flags *Flags
}
