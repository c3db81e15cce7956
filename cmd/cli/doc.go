// Package cli assembles the issuescout root command: configuration loading,
// logger construction, and registration of the issues and gh subcommands.
package cli
