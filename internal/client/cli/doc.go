// Package cli provides the interactive CareerMate command-line client.
//
// It wires configuration, the encrypted local state store, the REST API
// gateway, and the session manager into an interactive REPL. On start the
// session is rehydrated from local storage, so a previously logged-in user
// lands back in an authenticated prompt without re-entering credentials.
//
// Key features:
//   - Login / Logout with persisted tokens and automatic refresh
//   - Browse job and course opportunities, matched against the user's skills
//   - Attendance viewing and marking
//   - Resume and profile image upload
//   - Career-assistant chat
//   - Admin commands: register users, post opportunities, aggregated summary
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
