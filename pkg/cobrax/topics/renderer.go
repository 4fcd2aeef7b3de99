package topics

// Renderer turns a topic body into terminal output. The format hint
// is the topic file's extension, dot included.
type Renderer interface {
	Render(body string, format string) string
}

// Plain passes topic bodies through untouched.
type Plain struct{}

func (Plain) Render(body string, format string) string {
	return body
}
