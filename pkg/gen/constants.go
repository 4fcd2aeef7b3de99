package gen

// Source trees scanned relative to the workspace root.
const (
	CommandsPath  = "pkg/cmds/cmd"
	RenderersPath = "pkg/cmds/renderer"
)

// Destinations of the generated dispatch tables.
const (
	CommandTableFile  = "pkg/dispatch/zz_commands.go"
	RendererTableFile = "pkg/dispatch/zz_renderers.go"
	OverrideTableFile = "pkg/dispatch/zz_override.go"
)

// RegistryFile declares configured commands, override renderers, and
// listing outputs. It lives at the workspace root.
const RegistryFile = "registry.toml"

// Markers that structure the template files. The block between start
// and end is the per-entry snippet; the match marker is where the
// expanded entries land.
const (
	TemplateStart = "// -- TEMPLATE START --"
	TemplateEnd   = "// -- TEMPLATE END --"
	MatchMarker   = "// MATCH"
)

// modulePath prefixes every Go import the generator emits.
const modulePath = "github.com/writ-vcs/writ"
