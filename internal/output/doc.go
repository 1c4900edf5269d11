// Package output provides structured output handling for the diario CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for a person at a terminal and for a script or
// agent consuming machine output.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Entry saved", "date": date.String()})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", "date": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped:
//
//	printer.styles.Error   // Red, bold
//	printer.styles.Success // Green
//	printer.styles.Warning // Yellow
//	printer.styles.Bold    // Bold
//	printer.styles.Dim     // Gray
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad date, bad color, missing tool)
//	output.ExitSystemError // 2: System error (I/O failure, corrupt data file)
//	output.ExitConflict    // 3: Conflict (export target exists)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("invalid date: 2024-13-01")
//	output.NewSystemError("failed to write data file")
//	output.NewConflictError("file already exists: diario-2024-01-01.txt")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
