package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/logistics-net-api/internal/domain"
)

// ProcessPredictor runs the model script once per request:
//
//	<command> <script> <origin> <destination> <priority,priority,...> <fragility>
//
// A non-zero exit or any stderr output counts as failure. When the script
// exits non-zero with a quiet stderr, an {"error": ...} object on stdout
// supplies the failure details.
type ProcessPredictor struct {
	command string
	script  string
	timeout time.Duration
}

func NewProcessPredictor(command, script string, timeout time.Duration) *ProcessPredictor {
	return &ProcessPredictor{command: command, script: script, timeout: timeout}
}

func (p *ProcessPredictor) Predict(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.command, p.script,
		req.Origin,
		req.Destination,
		strings.Join(req.Priorities, ","),
		req.Fragility,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes open must not outlive the deadline.
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	errText := strings.TrimSpace(stderr.String())
	if err == nil && errText == "" {
		return decodeOutput(stdout.Bytes())
	}
	slog.Error("predictor process failed", "script", p.script, "err", err, "stderr", stderr.String())
	if errText == "" {
		// The model reports its own failures as {"error": "..."} on stdout before exiting non-zero.
		var pe *domain.PredictorError
		if _, decodeErr := decodeOutput(stdout.Bytes()); errors.As(decodeErr, &pe) && pe.Details != "" {
			return nil, pe
		}
		errText = err.Error()
	}
	return nil, &domain.PredictorError{Kind: domain.ErrPredictorFailed, Details: errText}
}
