package pipeline

// Context carries the request-level switches every command phase
// receives. Root is the directory the workspace search starts from;
// commands resolve it explicitly instead of relying on the process
// working directory. Renderer, when set, names the override renderer
// the output must go through.
type Context struct {
	Root      string
	Help      bool
	Confirmed bool
	Quiet     bool
	Renderer  string
}
