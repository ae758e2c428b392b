package tmuxobj

import "github.com/abhinav/tmuxobj/tmuxfmt"

// The fields captured for each entity when it is listed or refreshed. Every
// field a FieldSet ever holds originates from one of these records.
var (
	_sessionRecord = newRecord(
		"session_id",
		"session_name",
		"session_windows",
		"session_attached",
		"session_created",
	)

	_windowRecord = newRecord(
		"window_id",
		"window_index",
		"window_name",
		"window_active",
		"window_panes",
		"session_name",
	)

	_paneRecord = func() *tmuxfmt.Record {
		r := newRecord(
			"pane_id",
			"pane_index",
			"pane_active",
			"pane_width",
			"pane_height",
			"pane_current_command",
			"pane_current_path",
			"window_id",
		)
		// pane_mode is unset outside of a mode; report normal-mode then.
		r.Field("pane_mode", tmuxfmt.Ternary{
			Cond: tmuxfmt.Var("pane_in_mode"),
			Then: tmuxfmt.Var("pane_mode"),
			Else: tmuxfmt.String("normal-mode"),
		})
		return r
	}()
)

func newRecord(vars ...string) *tmuxfmt.Record {
	var r tmuxfmt.Record
	r.Vars(vars...)
	return &r
}
