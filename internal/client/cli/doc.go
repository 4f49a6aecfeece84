// Package cli provides the interactive diarykeeper terminal client.
//
// App wires the session manager, the Diary API client and the dashboard
// listing into a REPL. The top level plays the dashboard: list, open, create
// and delete entries, sign in and out. Opening or creating an entry enters an
// editor loop backed by an editor.Controller, where AI insight and
// recommendation requests run in the background while the user keeps
// editing.
//
// A background watcher pings the server and shows online/offline in the
// prompt.
package cli
