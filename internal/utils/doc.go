// Package utils bundles configuration and logging primitives shared by the
// issuescout commands: a Viper-backed configuration loader and a zap logger
// factory honoring the configured level and encoding.
package utils
