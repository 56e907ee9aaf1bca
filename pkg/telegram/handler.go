package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ridgeline-media/topfive/pkg/job"
	"github.com/ridgeline-media/topfive/pkg/models"
)

// PipelineRunner is the external collaborator behind /run and
// /pipeline-status. Its implementation (pkg/run's gate-transition state
// machine) is wired in separately; Handler only needs this narrow view.
type PipelineRunner interface {
	RunDay(ctx context.Context, date string) error
	Status(slug string) (models.PipelineState, error)
}

// confirmGatedCommands names the commands that must go through the
// two-step /confirm flow before they execute, per spec.md §4.9: "any
// pipeline run or pipeline day command".
var confirmGatedCommands = map[string]bool{
	"run": true,
}

// Handler routes admin Telegram commands to the job store/manager and
// pipeline runner, enforcing the admin allowlist before any command runs;
// /task goes through job.Manager.CreateJob, which applies the per-admin
// rate limit and global concurrency cap. It generalizes slack.Service's nil-safe notification
// wrapper into a two-way, stateful command router.
type Handler struct {
	store    *job.Store
	manager  *job.Manager
	pipeline PipelineRunner
	admins   map[int64]bool
	confirms *confirmCache
}

// NewHandler wires a job store/manager, optional pipeline runner (nil
// disables /run and /pipeline-status), and the admin ID allowlist.
func NewHandler(store *job.Store, manager *job.Manager, pipeline PipelineRunner, adminIDs []int64) *Handler {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Handler{store: store, manager: manager, pipeline: pipeline, admins: admins, confirms: newConfirmCache()}
}

// errNotAdmin is returned (as the reply text, not a Go error) when a
// non-admin chat ID issues any command.
const errNotAdmin = "you are not authorized to use this bot"

// Handle parses and dispatches one command line from adminID, returning
// the plain-text reply. Every command is recorded to the audit log
// regardless of outcome, per spec.md §6's admin_actions.jsonl.
func (h *Handler) Handle(ctx context.Context, adminID int64, text string) string {
	cmd, args := parseCommand(text)
	if cmd == "" {
		return "unrecognized command, try /help"
	}

	reply := errNotAdmin
	if h.admins[adminID] {
		reply = h.dispatch(ctx, adminID, cmd, args)
	}
	_ = h.store.AppendAudit(job.AuditEntry{
		Timestamp: time.Now().UTC(),
		AdminID:   adminID,
		Action:    cmd,
		Detail:    strings.Join(args, " "),
	})
	return reply
}

func (h *Handler) dispatch(ctx context.Context, adminID int64, cmd string, args []string) string {
	switch cmd {
	case "help":
		return helpText
	case "task":
		return h.handleTask(adminID, args)
	case "status":
		return h.handleStatus(args)
	case "logs":
		return h.handleLogs(args)
	case "checkpoint":
		return h.handleCheckpoint(args)
	case "cancel":
		return h.handleCancel(args)
	case "list":
		return h.handleList()
	case "continue":
		return h.handleContinue(args)
	case "artifacts":
		return h.handleArtifacts(args)
	case "get":
		return h.handleGet(args)
	case "approve":
		return h.handleApprove(args, true)
	case "deny":
		return h.handleApprove(args, false)
	case "pending":
		return h.handlePending()
	case "pipeline-status":
		return h.handlePipelineStatus(args)
	case "run":
		return h.handleRun(adminID, args)
	case "confirm":
		return h.handleConfirm(ctx, adminID, args)
	default:
		return fmt.Sprintf("unknown command /%s, try /help", cmd)
	}
}

func (h *Handler) handleTask(adminID int64, args []string) string {
	prompt := strings.Join(args, " ")
	if prompt == "" {
		return "usage: /task <prompt>"
	}
	title := prompt
	if len(title) > 60 {
		title = title[:60]
	}
	j, err := h.manager.CreateJob(adminID, title, prompt, models.JobTypeGeneral)
	if err != nil {
		return fmt.Sprintf("could not create job: %s", err)
	}
	return fmt.Sprintf("queued job %s", j.ID)
}

func (h *Handler) handleStatus(args []string) string {
	j, err := h.requireJob(args)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("job %s: status=%s progress=%d%% checkpoint=%q", j.ID, j.Status, j.ProgressPercent, j.Checkpoint)
}

func (h *Handler) handleLogs(args []string) string {
	j, err := h.requireJob(args)
	if err != nil {
		return err.Error()
	}
	logs, err := h.store.ReadLogs(j.ID)
	if err != nil {
		return fmt.Sprintf("could not read logs for %s: %s", j.ID, err)
	}
	return logs
}

func (h *Handler) handleCheckpoint(args []string) string {
	j, err := h.requireJob(args)
	if err != nil {
		return err.Error()
	}
	if j.Checkpoint == "" {
		return fmt.Sprintf("job %s has no checkpoint yet", j.ID)
	}
	return fmt.Sprintf("job %s checkpoint: %s (%d%%)", j.ID, j.Checkpoint, j.ProgressPercent)
}

func (h *Handler) handleCancel(args []string) string {
	if len(args) < 1 {
		return "usage: /cancel <job_id>"
	}
	if err := h.manager.Cancel(args[0]); err != nil {
		return fmt.Sprintf("could not cancel job %s: %s", args[0], err)
	}
	return fmt.Sprintf("canceled job %s", args[0])
}

func (h *Handler) handleList() string {
	jobs, err := h.store.List()
	if err != nil {
		return fmt.Sprintf("could not list jobs: %s", err)
	}
	if len(jobs) == 0 {
		return "no jobs"
	}
	var lines []string
	for _, j := range jobs {
		lines = append(lines, fmt.Sprintf("%s [%s] %s", j.ID, j.Status, j.Title))
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) handleContinue(args []string) string {
	j, err := h.requireJob(args)
	if err != nil {
		return err.Error()
	}
	pending := j.PendingPermission()
	if pending == nil {
		return fmt.Sprintf("job %s has no pending permission to continue", j.ID)
	}
	if err := h.manager.Approve(j.ID, pending.PermID, true); err != nil {
		return fmt.Sprintf("could not continue job %s: %s", j.ID, err)
	}
	return fmt.Sprintf("job %s resumed", j.ID)
}

func (h *Handler) handleArtifacts(args []string) string {
	j, err := h.requireJob(args)
	if err != nil {
		return err.Error()
	}
	if len(j.Artifacts) == 0 {
		return fmt.Sprintf("job %s has no artifacts", j.ID)
	}
	var lines []string
	for _, a := range j.Artifacts {
		lines = append(lines, a.Name)
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) handleGet(args []string) string {
	if len(args) < 2 {
		return "usage: /get <job_id> <artifact_name>"
	}
	j, err := h.store.Load(args[0])
	if err != nil {
		return fmt.Sprintf("job %s not found", args[0])
	}
	for _, a := range j.Artifacts {
		if a.Name == args[1] {
			content, err := h.store.ReadArtifact(j.ID, a)
			if err != nil {
				return fmt.Sprintf("could not read artifact %s: %s", a.Name, err)
			}
			return content
		}
	}
	return fmt.Sprintf("no artifact named %q on job %s", args[1], j.ID)
}

func (h *Handler) handleApprove(args []string, approved bool) string {
	if len(args) < 2 {
		return "usage: /approve <job_id> <perm_id> (or /deny)"
	}
	if err := h.manager.Approve(args[0], args[1], approved); err != nil {
		return fmt.Sprintf("could not resolve permission: %s", err)
	}
	if approved {
		return fmt.Sprintf("approved %s on job %s", args[1], args[0])
	}
	return fmt.Sprintf("denied %s on job %s", args[1], args[0])
}

func (h *Handler) handlePending() string {
	jobs, err := h.store.List()
	if err != nil {
		return fmt.Sprintf("could not list jobs: %s", err)
	}
	var lines []string
	for _, j := range jobs {
		if j.Status != models.JobStatusBlocked {
			continue
		}
		if p := j.PendingPermission(); p != nil {
			lines = append(lines, fmt.Sprintf("%s: %s (%s) — %s", j.ID, p.Action, p.RiskLevel, p.Reason))
		}
	}
	if len(lines) == 0 {
		return "no jobs awaiting approval"
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) handlePipelineStatus(args []string) string {
	if h.pipeline == nil {
		return "pipeline runner is not configured"
	}
	if len(args) < 1 {
		return "usage: /pipeline-status <run_slug>"
	}
	state, err := h.pipeline.Status(args[0])
	if err != nil {
		return fmt.Sprintf("could not load run %s: %s", args[0], err)
	}
	return fmt.Sprintf("run %s: status=%s", state.RunSlug, state.Status)
}

func (h *Handler) handleRun(adminID int64, args []string) string {
	if h.pipeline == nil {
		return "pipeline runner is not configured"
	}
	if len(args) < 1 {
		return "usage: /run <YYYY-MM-DD>"
	}
	token, err := h.confirms.create(adminID, "run", args)
	if err != nil {
		return fmt.Sprintf("could not start confirmation: %s", err)
	}
	return fmt.Sprintf("this will start a pipeline run for %s. Reply /confirm %s within 5 minutes to proceed.", args[0], token)
}

func (h *Handler) handleConfirm(ctx context.Context, adminID int64, args []string) string {
	if len(args) < 1 {
		return "usage: /confirm <token>"
	}
	pending, ok := h.confirms.resolve(adminID, args[0])
	if !ok {
		return "confirmation token is invalid or expired"
	}
	if !confirmGatedCommands[pending.command] {
		return "nothing to confirm"
	}

	switch pending.command {
	case "run":
		if err := h.pipeline.RunDay(ctx, pending.args[0]); err != nil {
			return fmt.Sprintf("pipeline run failed: %s", err)
		}
		return fmt.Sprintf("pipeline run started for %s", pending.args[0])
	default:
		return "nothing to confirm"
	}
}

func (h *Handler) requireJob(args []string) (*models.Job, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /<command> <job_id>")
	}
	j, err := h.store.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("job %s not found", args[0])
	}
	return j, nil
}

// parseCommand splits "/cmd arg1 arg2" into ("cmd", ["arg1", "arg2"]).
// Leading '/' is stripped; a bare non-command message returns ("", nil).
func parseCommand(text string) (string, []string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", nil
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

const helpText = `Available commands:
/task <prompt> — create a job
/status <job_id>
/logs <job_id>
/checkpoint <job_id>
/cancel <job_id>
/list
/continue <job_id>
/artifacts <job_id>
/get <job_id> <artifact_name>
/approve <job_id> <perm_id>
/deny <job_id> <perm_id>
/pending
/pipeline-status <run_slug>
/run <YYYY-MM-DD>
/confirm <token>
/help`

// parseAdminID is a small helper for callers that receive the admin's
// chat ID as a string (e.g. from config), not used by Handler itself
// but kept alongside parseCommand as the matching parse helper.
func parseAdminID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
