// Package diag defines the diagnostic log model shared by the argument parser,
// the file manager, the language pack linter and command handlers.
//
// # Purpose
//
//   - Describe one reportable event (Log) without knowing how or where it will
//     be printed.
//   - Let producers turn their typed errors into logs through the Diagnoser
//     interface, so the process glue converts every failure the same way.
//
// # Scope
//
// Package diag performs no formatting, translation or IO. Rendering, colour and
// the log limit live in internal/console; template resolution lives in
// internal/langpack.
//
// # Data model
//
// Log is the central record:
//
//   - Kind – Error, Warning or Notice.
//   - Title – a template string, usually a single {^id} placeholder.
//   - Descriptions – ordered lines, each Normal (printed) or Optional (printed
//     only when the caller asks for details).
//
// Title and description texts are templates: they may contain {^key}
// placeholders and literal text, and are translated when rendered.
package diag
