package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/fsutil"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// maxReadChars truncates read_file output, per spec.md §4.8.
const maxReadChars = 10000

// ToolCall is one tool invocation the LLM requested, decoded from its
// function-call arguments.
type ToolCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// ToolResult is returned to the LLM as the tool's output. Per mcp.Execute's
// convention, sandbox/argument errors are reported as Content with IsError
// set, never as a Go error — only a state-corrupting failure (disk full,
// workspace missing) returns one.
type ToolResult struct {
	Content string
	IsError bool
	// Outcome carries state transitions a tool causes that the runner
	// must apply to the job record (block/complete). Zero value means
	// "no transition, keep looping".
	Outcome Outcome
}

// Outcome is a tool-caused job state transition.
type Outcome int

// Recognized outcomes.
const (
	OutcomeNone Outcome = iota
	OutcomeBlock
	OutcomeComplete
)

// toolNames is the closed catalog from spec.md §4.8. Each is a separate
// method rather than a map of closures, so the set is fixed at compile
// time instead of extensible by configuration.
var toolNames = map[string]bool{
	"write_file":          true,
	"read_file":           true,
	"list_files":          true,
	"add_source":          true,
	"update_checkpoint":   true,
	"request_permission":  true,
	"complete":            true,
}

// Workspace executes the closed tool catalog against one job's sandbox
// directory. It owns no job-record mutation beyond what callers read off
// ToolResult.Outcome and the job-record fields it writes directly
// (checkpoint, sources.json, etc.) — status transitions stay the
// runner's responsibility.
type Workspace struct {
	root string // job.Workspace(jobsRoot), the sandbox boundary
}

// NewWorkspace wraps a job's workspace directory.
func NewWorkspace(root string) *Workspace {
	return &Workspace{root: root}
}

// Execute dispatches a tool call by name. Unknown tool names are reported
// as an error result, not a Go error, matching
// mcp.ToolExecutor.resolveToolCall's "unknown route -> error content"
// convention.
func (w *Workspace) Execute(call ToolCall, j *models.Job) ToolResult {
	if !toolNames[call.Name] {
		return ToolResult{Content: fmt.Sprintf("unknown tool %q", call.Name), IsError: true}
	}

	switch call.Name {
	case "write_file":
		return w.writeFile(call.Args)
	case "read_file":
		return w.readFile(call.Args)
	case "list_files":
		return w.listFiles(call.Args)
	case "add_source":
		return w.addSource(call.Args)
	case "update_checkpoint":
		return w.updateCheckpoint(call.Args, j)
	case "request_permission":
		return w.requestPermission(call.Args, j)
	case "complete":
		return w.complete(call.Args, j)
	default:
		return ToolResult{Content: fmt.Sprintf("unknown tool %q", call.Name), IsError: true}
	}
}

// resolvePath normalizes filename against the workspace root and rejects
// any path that escapes it, the only security boundary per spec.md §4.8.
func (w *Workspace) resolvePath(filename string) (string, error) {
	cleaned := filepath.Clean(filename)
	joined := filepath.Join(w.root, cleaned)
	rel, err := filepath.Rel(w.root, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes job workspace", filename)
	}
	return joined, nil
}

type writeFileArgs struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (w *Workspace) writeFile(raw json.RawMessage) ToolResult {
	var args writeFileArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid write_file arguments: %s", err), IsError: true}
	}
	path, err := w.resolvePath(args.Filename)
	if err != nil {
		return ToolResult{Content: err.Error(), IsError: true}
	}
	if err := fsutil.WriteFileAtomic(path, []byte(args.Content), 0o644); err != nil {
		return ToolResult{Content: fmt.Sprintf("write failed: %s", err), IsError: true}
	}
	return ToolResult{Content: fmt.Sprintf("wrote %d bytes to %s", len(args.Content), args.Filename)}
}

type readFileArgs struct {
	Filename string `json:"filename"`
}

func (w *Workspace) readFile(raw json.RawMessage) ToolResult {
	var args readFileArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid read_file arguments: %s", err), IsError: true}
	}
	path, err := w.resolvePath(args.Filename)
	if err != nil {
		return ToolResult{Content: err.Error(), IsError: true}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ToolResult{Content: fmt.Sprintf("read failed: %s", err), IsError: true}
	}
	text := string(data)
	if len(text) > maxReadChars {
		text = text[:maxReadChars]
	}
	return ToolResult{Content: text}
}

type listFilesArgs struct {
	Path string `json:"path"`
}

func (w *Workspace) listFiles(raw json.RawMessage) ToolResult {
	var args listFilesArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid list_files arguments: %s", err), IsError: true}
	}
	dir := args.Path
	if dir == "" {
		dir = "."
	}
	path, err := w.resolvePath(dir)
	if err != nil {
		return ToolResult{Content: err.Error(), IsError: true}
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return ToolResult{Content: fmt.Sprintf("list failed: %s", err), IsError: true}
	}
	var lines []string
	for _, e := range entries {
		if e.IsDir() {
			lines = append(lines, "[DIR] "+e.Name())
		} else {
			lines = append(lines, e.Name())
		}
	}
	return ToolResult{Content: strings.Join(lines, "\n")}
}

// Source is one research source recorded by add_source, appended to the
// workspace's sources.json.
type Source struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Reliability string `json:"reliability,omitempty"`
}

func (w *Workspace) addSource(raw json.RawMessage) ToolResult {
	var src Source
	if err := json.Unmarshal(raw, &src); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid add_source arguments: %s", err), IsError: true}
	}

	path := filepath.Join(w.root, "sources.json")
	var sources []Source
	_ = fsutil.ReadJSON(path, &sources)
	sources = append(sources, src)
	if err := fsutil.WriteJSONAtomic(path, sources); err != nil {
		return ToolResult{Content: fmt.Sprintf("write sources.json failed: %s", err), IsError: true}
	}
	return ToolResult{Content: fmt.Sprintf("recorded source %s (%d total)", src.URL, len(sources))}
}

type checkpointArgs struct {
	Summary         string `json:"summary"`
	ProgressPercent *int   `json:"progress_percent,omitempty"`
}

func (w *Workspace) updateCheckpoint(raw json.RawMessage, j *models.Job) ToolResult {
	var args checkpointArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid update_checkpoint arguments: %s", err), IsError: true}
	}
	j.Checkpoint = args.Summary
	if args.ProgressPercent != nil {
		j.ProgressPercent = clampPercent(*args.ProgressPercent)
	}
	return ToolResult{Content: "checkpoint recorded"}
}

type requestPermissionArgs struct {
	Action          string `json:"action"`
	Reason          string `json:"reason"`
	RiskLevel       string `json:"risk_level"`
	SafeAlternative string `json:"safe_alternative,omitempty"`
}

func (w *Workspace) requestPermission(raw json.RawMessage, j *models.Job) ToolResult {
	var args requestPermissionArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid request_permission arguments: %s", err), IsError: true}
	}
	perm := models.PermissionRequest{
		PermID:          fmt.Sprintf("perm-%d", time.Now().UnixNano()),
		JobID:           j.ID,
		Action:          args.Action,
		Reason:          args.Reason,
		RiskLevel:       models.RiskLevel(args.RiskLevel),
		SafeAlternative: args.SafeAlternative,
		CreatedAt:       time.Now().UTC(),
	}
	j.Permissions = append(j.Permissions, perm)
	return ToolResult{Content: "permission requested, awaiting admin approval", Outcome: OutcomeBlock}
}

type completeArgs struct {
	Summary string `json:"summary"`
}

func (w *Workspace) complete(raw json.RawMessage, j *models.Job) ToolResult {
	var args completeArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return ToolResult{Content: fmt.Sprintf("invalid complete arguments: %s", err), IsError: true}
	}
	j.Checkpoint = args.Summary
	j.ProgressPercent = 100

	outputPath := filepath.Join(w.root, "output.md")
	if _, err := os.Stat(outputPath); err == nil {
		j.Artifacts = append(j.Artifacts, models.Artifact{
			Name:      "output.md",
			Path:      outputPath,
			MimeType:  "text/markdown",
			CreatedAt: time.Now().UTC(),
		})
	}
	return ToolResult{Content: "job complete", Outcome: OutcomeComplete}
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
