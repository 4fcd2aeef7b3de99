package cli

// User-facing strings for the root command, kept in one place so the
// cobra wiring reads clean.
const (
	MsgRootShort = "Just-enough version control for writing projects"

	MsgRootLong = `writ is a just-enough version control for writing projects. It keeps
a workspace of prose under a .writ marker, records file contents into
a content-addressed store, and reports what changed since the last
recording.

Arguments are routed through writ's own command table, so "writ
storage build" and "writ status" are commands even though cobra only
sees the root. Run "writ help topics" for background reading beyond
per-command help.`

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRenderer = "Render the result through a named renderer (json, yaml, ...)"
	MsgFlagYes      = "Confirm side effects instead of previewing them"
	MsgFlagQuiet    = "Suppress result output"
	MsgFlagRoot     = "Directory the workspace search starts from"
)
