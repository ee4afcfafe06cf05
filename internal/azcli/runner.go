// Package azcli runs the Azure CLI and decodes its JSON output.
package azcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes az invocations. The production implementation
// shells out; tests substitute a scripted runner.
type CommandRunner interface {
	// Output runs az with args and returns stdout. A non-zero exit
	// surfaces as an error carrying the stderr text.
	Output(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec-backed CommandRunner.
type ExecRunner struct {
	// Bin overrides the binary name, default "az".
	Bin string
}

func (r ExecRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	bin := r.Bin
	if bin == "" {
		bin = "az"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s %s: %w", bin, strings.Join(args, " "), err)
		}
		return nil, fmt.Errorf("%s %s: %s", bin, strings.Join(args, " "), msg)
	}
	return stdout.Bytes(), nil
}

// JSON runs az with args plus JSON output selection and decodes stdout
// into v.
func JSON(ctx context.Context, r CommandRunner, v any, args ...string) error {
	out, err := r.Output(ctx, append(args, "--output", "json")...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("failed to decode az output: %w", err)
	}
	return nil
}
