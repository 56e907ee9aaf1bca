// Package subprocess invokes the external render and upload commands
// finalize hands runs off to, per spec.md §5's "Subprocess invocation in
// finalize (render up to 1h, upload up to 30m)". It is grounded on
// pkg/mcp/transport.go's createStdioTransport: a configured command name,
// argument list, and inherited-plus-overridden environment, run via
// os/exec under the caller's context.
package subprocess

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Spec names one external command: the executable plus any fixed
// arguments. The run_slug is always appended as the final argument.
type Spec struct {
	Command string
	Args    []string
	Env     map[string]string
}

// Runner shells out to a configured command for each run, capturing
// combined output for error reporting and failure diagnostics.
type Runner struct {
	spec Spec
}

// NewRunner builds a Runner for spec. A blank spec.Command makes every
// call return a config error, matching spec.md's "missing a required
// key yields a config error" discipline for external collaborators.
func NewRunner(spec Spec) *Runner {
	return &Runner{spec: spec}
}

// Run invokes the configured command with runSlug appended as the final
// argument, under ctx's deadline. Non-zero exit or launch failure
// returns an error embedding the command's combined stdout+stderr.
func (r *Runner) Run(ctx context.Context, runSlug string) error {
	if r.spec.Command == "" {
		return fmt.Errorf("config: subprocess command not configured")
	}

	args := append(append([]string{}, r.spec.Args...), runSlug)
	cmd := exec.CommandContext(ctx, r.spec.Command, args...)

	env := os.Environ()
	for k, v := range r.spec.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", r.spec.Command, runSlug, err, out.String())
	}
	return nil
}

// Render implements run.Renderer.
func (r *Runner) Render(ctx context.Context, runSlug string) error {
	return r.Run(ctx, runSlug)
}

// Upload implements run.Uploader.
func (r *Runner) Upload(ctx context.Context, runSlug string) error {
	return r.Run(ctx, runSlug)
}
