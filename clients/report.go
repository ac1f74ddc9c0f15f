package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mosuYamaoka/1on1checker/orchestrator"
)

// --- Report rendering (/render-report) ---
type RenderResp struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// RenderReport hands a finished report to the presentation service.
func (h *HTTP) RenderReport(ctx context.Context, url string, rep *orchestrator.Report) (*RenderResp, error) {
	b, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(url, "/")+"/render-report", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("render report %s: %s", resp.Status, string(body))
	}

	var out RenderResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("render report decode: %w", err)
	}
	return &out, nil
}
