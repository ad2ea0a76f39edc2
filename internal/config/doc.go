// Package config loads logview's optional TOML settings.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logview/config.toml
//  3. If the file doesn't exist, fall back to defaults
//
// Missing config files are NOT an error. Without one the viewer polls every
// 100ms, uses filesystem notifications when the host has them, shows no
// backlog and writes no diagnostics log.
//
// # TOML Format
//
//	poll_interval = "250ms"
//	backlog = 20
//	log_file = "~/.cache/logview/logview.log"
//	notify = false
//
// All fields are optional. Tilde expansion is performed on log_file.
// Non-positive intervals and negative backlogs fall back to defaults.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and unparseable durations. Command-line
// flags are applied by the caller on top of the loaded Config.
package config
