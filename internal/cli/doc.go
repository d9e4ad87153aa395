// Package cli provides the interactive settings console.
//
// NewApp wires configuration, the blob store and the application settings,
// preloads the settings cache and returns an App whose Run method drives a
// read–eval–print loop until the user exits or input ends.
//
// Commands:
//
//	help                 show available commands
//	get <name>           print one setting (seeds its default if unset)
//	set <name> <value>   store a setting; the value may contain spaces
//	list                 print every setting
//	keys                 print raw blob store keys
//	exit | quit          leave the program
package cli
