package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/cartpole-guard/internal/config"
	"github.com/danielpatrickdp/cartpole-guard/internal/provenance"
	"github.com/danielpatrickdp/cartpole-guard/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to check_log.db (DB mode)")
	episodeID := flag.String("episode", "", "episode to replay (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	limitsPath := flag.String("limits", "", "limits YAML to replay against (DB mode; defaults when empty)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/check_log.db --episode id [--limits file.yaml]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *episodeID, *limitsPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

func runDBMode(dbPath, episodeID, limitsPath string) int {
	if episodeID == "" {
		fmt.Fprintln(os.Stderr, "DB mode requires --episode")
		return 2
	}

	store, err := provenance.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	records, err := store.Episode(episodeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load episode: %v\n", err)
		return 2
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "no checks logged for episode %s\n", episodeID)
		return 2
	}

	limits, err := config.LoadLimits(limitsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load limits: %v\n", err)
		return 2
	}

	steps := toSteps(records)
	results := replay.Replay(steps, limits)
	return printComparison(results)
}

// toSteps converts logged checks to replay steps. The logged decision becomes
// the reference outcome so divergence under new limits is visible.
func toSteps(records []provenance.CheckRecord) []replay.Step {
	steps := make([]replay.Step, len(records))
	for i, rec := range records {
		expected := replay.ActionReject
		if rec.Allowed {
			expected = replay.ActionAllow
		}
		steps[i] = replay.Step{
			Step:     rec.Step,
			State:    rec.State,
			Force:    rec.Force,
			Expected: expected,
		}
	}
	return steps
}

// #endregion db-mode

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	if f.Description != "" {
		fmt.Printf("Fixture: %s\n\n", f.Description)
	}
	results := replay.Replay(f.ToSteps(), f.ToLimits())
	return printComparison(results)
}

// #endregion fixture-mode

// #region output

// printComparison outputs a per-step comparison table and returns the exit
// code: 0 when every step matches its reference outcome, 1 on divergence.
func printComparison(results []replay.Result) int {
	fmt.Printf("%-8s| %-10s| %-10s| %-6s| %s\n", "Step", "Expected", "Replayed", "Match", "Reason")
	fmt.Printf("%-8s+%-11s+%-11s+%-7s+%s\n",
		"--------", "-----------", "-----------", "-------", "--------------------")

	for _, r := range results {
		exp := r.Expected
		if exp == "" {
			exp = "—"
		}
		match := "OK"
		if !r.Match {
			match = "DIFF"
		}
		fmt.Printf("%-8d| %-10s| %-10s| %-6s| %s\n", r.Step, exp, r.Action, match, r.Reason)

		for _, v := range r.Decision.Violations {
			fmt.Printf("%-8s| %-10s| %-10s| %-6s|   %s: |%.4f| > %.4f\n",
				"", "", "", "", v.Kind, v.Value, v.Bound)
		}
	}

	s := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d allowed, %d rejected, %d match, %d diverge\n",
		s.Total, s.Allowed, s.Rejected, s.Matches, s.Divergence)

	if s.Divergence > 0 {
		return 1
	}
	return 0
}

// #endregion output
