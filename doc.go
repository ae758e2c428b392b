// Package tmuxobj exposes the session/window/pane hierarchy of the tmux(1)
// terminal multiplexer by shelling out to the tmux binary.
//
// All interaction with tmux funnels through the [Driver] interface and its
// [ShellDriver] implementation: a single synchronous invocation of the
// binary whose standard output and standard error are captured as line
// sequences. On top of that, [Server], [Session], [Window], and [Pane]
// represent the entities tmux manages, each carrying the fields tmux
// reported for it in a [FieldSet].
package tmuxobj
