package utils

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MinutesSavedPerDraft = 3
	DollarsSavedPerDraft = 3
)

// HistoryRecord is one generated campaign URL.
type HistoryRecord struct {
	ID               string           `json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	Description      string           `json:"description,omitempty"`
	Fields           CampaignFields   `json:"fields"`
	FinalURL         string           `json:"final_url"`
	ShortURL         string           `json:"short_url,omitempty"`
	ValidationStatus ValidationStatus `json:"validation_status,omitempty"`
}

// ROISummary estimates the manual work saved by generated drafts.
type ROISummary struct {
	Drafts       int `json:"drafts"`
	MinutesSaved int `json:"minutes_saved"`
	DollarsSaved int `json:"dollars_saved"`
}

// HistoryLog is an append-only JSON-lines file. Appends are serialized.
type HistoryLog struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func NewHistoryLog(path string, logger *zap.Logger) *HistoryLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryLog{path: path, logger: logger.Named("history")}
}

// Append assigns ID and CreatedAt when unset and writes the record as one line.
func (h *HistoryLog) Append(record HistoryRecord) (HistoryRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	line, err := json.Marshal(record)
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("failed to encode history record: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return HistoryRecord{}, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return HistoryRecord{}, fmt.Errorf("failed to append history record: %w", err)
	}
	h.logger.Debug("history record appended", zap.String("id", record.ID))
	return record, nil
}

// List returns up to limit records, newest first. limit <= 0 returns all of them.
// Lines that fail to decode are skipped.
func (h *HistoryLog) List(limit int) ([]HistoryRecord, error) {
	records, err := h.readAll()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (h *HistoryLog) ROI() (ROISummary, error) {
	records, err := h.readAll()
	if err != nil {
		return ROISummary{}, err
	}
	return ROIFor(len(records)), nil
}

func ROIFor(drafts int) ROISummary {
	return ROISummary{
		Drafts:       drafts,
		MinutesSaved: drafts * MinutesSavedPerDraft,
		DollarsSaved: drafts * DollarsSavedPerDraft,
	}
}

func (h *HistoryLog) readAll() ([]HistoryRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return []HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	records := []HistoryRecord{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record HistoryRecord
		if err := json.Unmarshal(line, &record); err != nil {
			h.logger.Warn("skipping malformed history line", zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}
	return records, nil
}
