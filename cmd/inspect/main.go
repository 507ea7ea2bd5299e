package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/guard"
	"github.com/danielpatrickdp/cartpole-guard/internal/provenance"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to check_log.db")
	last := flag.Int("last", 20, "show N most recent checks")
	episode := flag.String("episode", "", "show one episode's checks and summary")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/check_log.db [--last N] [--episode id] [--json]")
		os.Exit(2)
	}

	store, err := provenance.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episode != "" {
		if err := runEpisodeMode(store, *episode, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	CheckID    string            `json:"check_id"`
	EpisodeID  string            `json:"episode_id,omitempty"`
	Step       int64             `json:"step"`
	Position   float64           `json:"cart_position"`
	Angle      float64           `json:"pole_angle"`
	Force      float64           `json:"force"`
	Decision   string            `json:"decision"`
	Reason     string            `json:"reason,omitempty"`
	Violations []guard.Violation `json:"violations,omitempty"`
	SpecHash   string            `json:"spec_hash"`
	CreatedAt  string            `json:"created_at"`
}

func runListMode(store *provenance.Store, last int, jsonOut bool) error {
	records, err := store.Recent(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no checks found")
		return nil
	}

	// Store returns newest first; reverse for chronological output.
	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[len(records)-1-i] = toRow(rec)
	}

	if jsonOut {
		return printJSON(rows)
	}
	printTable(rows)
	return nil
}

// #endregion list-mode

// #region episode-mode

type episodeOutput struct {
	Summary provenance.EpisodeSummary `json:"summary"`
	Checks  []listRow                 `json:"checks"`
}

func runEpisodeMode(store *provenance.Store, episodeID string, jsonOut bool) error {
	records, err := store.Episode(episodeID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no checks logged for episode %s", episodeID)
	}

	summary, err := store.SummarizeEpisode(episodeID)
	if err != nil {
		return err
	}

	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[i] = toRow(rec)
	}

	if jsonOut {
		return printJSON(episodeOutput{Summary: summary, Checks: rows})
	}

	printTable(rows)
	fmt.Printf("\nEpisode:    %s\n", summary.EpisodeID)
	fmt.Printf("Checks:     %d (steps %d..%d)\n", summary.Checks, summary.FirstStep, summary.LastStep)
	fmt.Printf("Violations: %d\n", summary.Violations)
	return nil
}

// #endregion episode-mode

// #region output

func toRow(rec provenance.CheckRecord) listRow {
	decision := "reject"
	if rec.Allowed {
		decision = "allow"
	}
	row := listRow{
		CheckID:   rec.CheckID,
		EpisodeID: rec.EpisodeID,
		Step:      rec.Step,
		Position:  rec.State.CartPosition,
		Angle:     rec.State.PoleAngle,
		Force:     rec.Force,
		Decision:  decision,
		Reason:    rec.Reason,
		SpecHash:  rec.SpecHash,
		CreatedAt: rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if rec.ViolationsJSON != "" {
		// Best effort; the table still renders if old rows hold odd JSON.
		_ = json.Unmarshal([]byte(rec.ViolationsJSON), &row.Violations)
	}
	return row
}

func printTable(rows []listRow) {
	fmt.Printf("%-10s  %-12s  %5s  %9s  %9s  %8s  %-7s  %s\n",
		"Check", "Episode", "Step", "Position", "Angle", "Force", "Allowed", "Time")
	fmt.Printf("%-10s+-%-12s+-%5s+-%9s+-%9s+-%8s+-%-7s+-%s\n",
		"----------", "------------", "-----", "---------", "---------", "--------", "-------", "--------------------")

	for _, r := range rows {
		fmt.Printf("%-10s  %-12s  %5d  %9.4f  %9.4f  %8.4f  %-7s  %s\n",
			shortID(r.CheckID), r.EpisodeID, r.Step, r.Position, r.Angle, r.Force, r.Decision, r.CreatedAt)
		for _, v := range r.Violations {
			fmt.Printf("%-10s    %s: |%.4f| > %.4f\n", "", v.Kind, v.Value, v.Bound)
		}
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
