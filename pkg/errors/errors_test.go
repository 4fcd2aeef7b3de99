// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/writ-vcs/writ/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "renderer not registered",
			wantStr: "[NOT_FOUND] renderer not registered",
		},
		{
			name:    "config_parse_error",
			code:    errors.ErrConfigParse,
			message: "malformed registry file",
			wantStr: "[CONFIG_PARSE] malformed registry file",
		},
		{
			name:    "workspace_error",
			code:    errors.ErrWorkspaceNotFound,
			message: "no workspace marker above cwd",
			wantStr: "[WORKSPACE_NOT_FOUND] no workspace marker above cwd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("read registry.toml: permission denied")
	err := errors.Wrap(cause, errors.ErrConfigLoad, "cannot load command registry")

	if !stderrors.Is(err, cause) {
		t.Error("Wrap() should keep the cause reachable via errors.Is")
	}

	want := "[CONFIG_LOAD] cannot load command registry: read registry.toml: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrConfigLoad, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapfNil(t *testing.T) {
	if errors.Wrapf(nil, errors.ErrGenerate, "gen %s", "commands") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "command %q is already registered", "status")
	target := errors.New(errors.ErrAlreadyExists, "")

	if !stderrors.Is(err, target) {
		t.Error("errors.Is should match WritErrors by code")
	}

	other := errors.New(errors.ErrNotFound, "")
	if stderrors.Is(err, other) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrTemplateInvalid, "missing start marker")
	wrapped := fmt.Errorf("generating renderers: %w", err)

	if !errors.IsErrorCode(wrapped, errors.ErrTemplateInvalid) {
		t.Error("IsErrorCode should see through fmt.Errorf wrapping")
	}

	if errors.IsErrorCode(wrapped, errors.ErrGenerate) {
		t.Error("IsErrorCode matched the wrong code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknown) {
		t.Error("plain errors carry no code")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrStorageWrite, "x")); got != errors.ErrStorageWrite {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrStorageWrite)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrScanSource, "unreadable file").
		WithDetail("path", "cmds/cmd/status.go").
		WithDetail("line", 12)

	details := errors.GetErrorDetails(err)
	if details["path"] != "cmds/cmd/status.go" {
		t.Errorf("details[path] = %v", details["path"])
	}
	if details["line"] != 12 {
		t.Errorf("details[line] = %v", details["line"])
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("plain errors have no details")
	}
}
