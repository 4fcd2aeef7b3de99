package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/writ-vcs/writ/pkg/pipeline"
)

// Presenter renders errors for people. The pipeline reports typed
// errors; the presenter decides what each one looks like on screen.
type Presenter interface {
	Error(err error) string
}

// NewPresenter returns the presenter matching a format. FormatAuto is
// resolved by the caller before it gets here; anything not explicitly
// terminal renders plain.
func NewPresenter(format Format) Presenter {
	if format == FormatTerminal {
		return &TerminalPresenter{}
	}
	return &PlainPresenter{}
}

// TerminalPresenter renders errors with color and structure
type TerminalPresenter struct{}

// Error renders an error message for the terminal
func (p *TerminalPresenter) Error(err error) string {
	if err == nil {
		return ""
	}

	var noMatch *pipeline.NoMatchingCommandError
	if stderrors.As(err, &noMatch) {
		input := strings.Join(noMatch.Input, " ")
		if input == "" {
			return fmt.Sprintf("%s no command given", ErrorIndicator)
		}
		msg := fmt.Sprintf("%s no matching command for %s", ErrorIndicator, Bold(input))
		if noMatch.Suggestion != "" {
			msg += "\n" + MutedStyle.Render(fmt.Sprintf("Did you mean %q?", noMatch.Suggestion))
		}
		return msg
	}

	var ambiguous *pipeline.AmbiguousCommandError
	if stderrors.As(err, &ambiguous) {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%s %s matches more than one command:",
			WarningIndicator, Bold(strings.Join(ambiguous.Input, " "))))
		for i, candidate := range ambiguous.Candidates {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, candidate))
		}
		b.WriteString("\n" + MutedStyle.Render("Spell out the full command to pick one."))
		return b.String()
	}

	var parse *pipeline.ParseError
	if stderrors.As(err, &parse) {
		return fmt.Sprintf("%s %v\n\n%s", ErrorIndicator, parse.Err, MutedStyle.Render(parse.Help))
	}

	var helpRenderer *pipeline.HelpWithRendererError
	if stderrors.As(err, &helpRenderer) {
		return fmt.Sprintf("%s help is plain text, drop --renderer %s to read it",
			ErrorIndicator, Bold(helpRenderer.Renderer))
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainPresenter renders errors as plain text (no styling)
type PlainPresenter struct{}

// Error renders a plain error message
func (p *PlainPresenter) Error(err error) string {
	if err == nil {
		return ""
	}

	var noMatch *pipeline.NoMatchingCommandError
	if stderrors.As(err, &noMatch) {
		input := strings.Join(noMatch.Input, " ")
		if input == "" {
			return "Error: no command given"
		}
		msg := fmt.Sprintf("Error: no matching command for %q", input)
		if noMatch.Suggestion != "" {
			msg += fmt.Sprintf("\nDid you mean %q?", noMatch.Suggestion)
		}
		return msg
	}

	var ambiguous *pipeline.AmbiguousCommandError
	if stderrors.As(err, &ambiguous) {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Error: %q matches more than one command:", strings.Join(ambiguous.Input, " ")))
		for i, candidate := range ambiguous.Candidates {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, candidate))
		}
		b.WriteString("\nSpell out the full command to pick one.")
		return b.String()
	}

	var parse *pipeline.ParseError
	if stderrors.As(err, &parse) {
		return fmt.Sprintf("Error: %v\n\n%s", parse.Err, parse.Help)
	}

	var helpRenderer *pipeline.HelpWithRendererError
	if stderrors.As(err, &helpRenderer) {
		return fmt.Sprintf("Error: help is plain text, drop --renderer %s to read it", helpRenderer.Renderer)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
