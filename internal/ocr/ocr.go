// Package ocr extracts text lines from receipt images by shelling out to
// an external recognizer binary. The binary takes the image path as its
// only argument and writes one recognized line per stdout line; a
// non-zero exit means recognition failed and no partial output is used.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Recognizer extracts text lines from an image on disk.
type Recognizer interface {
	RecognizeText(ctx context.Context, imagePath string) ([]string, error)
}

// ExecRecognizer runs an external binary for each recognition request.
type ExecRecognizer struct {
	bin string
}

func NewExecRecognizer(bin string) *ExecRecognizer {
	return &ExecRecognizer{bin: bin}
}

func (r *ExecRecognizer) RecognizeText(ctx context.Context, imagePath string) ([]string, error) {
	cmd := exec.CommandContext(ctx, r.bin, imagePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			return nil, fmt.Errorf("run recognizer: %w", err)
		}
		return nil, fmt.Errorf("run recognizer: %w: %s", err, reason)
	}

	var lines []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// JoinLines builds the raw text stored on a transaction from recognized
// lines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
