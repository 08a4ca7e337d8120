package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentRecord struct {
	ID        int
	Kind      string // "search" or "reflex"
	Policy    string
	Evaluator string
	Depth     int
}

type GameRecord struct {
	ID    int
	Agent int // AgentRecord.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// moveRow is the parquet schema of a move record
type moveRow struct {
	Game            int32   `parquet:"game"`
	Step            int32   `parquet:"step"`
	Action          string  `parquet:"action,dict"`
	Score           float64 `parquet:"score"`
	Policy          string  `parquet:"policy,dict"`
	Depth           int32   `parquet:"depth"`
	DurationNanos   int64   `parquet:"duration_ns"`
	NodesExpanded   int64   `parquet:"nodes_expanded"`
	LeavesEvaluated int64   `parquet:"leaves_evaluated"`
	Prunes          int64   `parquet:"prunes"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	header := []string{"id", "kind", "policy", "evaluator", "depth"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Kind,
			record.Policy,
			record.Evaluator,
			strconv.Itoa(record.Depth),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "layout", "won", "score", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			record.Layout,
			strconv.FormatBool(record.Won),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "action", "score", "policy", "depth", "duration", "nodes_expanded", "leaves_evaluated", "prunes"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Action,
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.Policy,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.NodesExpanded),
			strconv.Itoa(record.LeavesEvaluated),
			strconv.Itoa(record.Prunes),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

// WriteMoveArchive stores the move records as zstd compressed parquet for analytics
func (w *Writer) WriteMoveArchive(records []MoveRecord) error {
	rows := make([]moveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, moveRow{
			Game:            int32(record.Game),
			Step:            int32(record.Step),
			Action:          record.Action,
			Score:           record.Score,
			Policy:          record.Policy,
			Depth:           int32(record.Depth),
			DurationNanos:   record.Duration.Nanoseconds(),
			NodesExpanded:   int64(record.NodesExpanded),
			LeavesEvaluated: int64(record.LeavesEvaluated),
			Prunes:          int64(record.Prunes),
		})
	}

	// Write to a temp file and rename atomically.
	path := filepath.Join(w.baseDir, "move_records.parquet")
	tmpPath := path + ".tmp"
	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write move archive: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename move archive: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	writer := csv.NewWriter(f)

	// Write header
	if err := writer.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	// Write each row
	if err := writer.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
