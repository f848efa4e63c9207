package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/paceline/internal/genstate"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/plan"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type stats struct {
	total     int
	generated int
	skipped   int
	errored   int
}

func main() {
	intakePath := flag.String("intake", "", "path to an intake JSON file or a directory of them")
	outDir := flag.String("out", ".", "directory to write plan JSON files into")
	dryRun := flag.Bool("dry-run", false, "generate and validate but don't write plan files")
	force := flag.Bool("force", false, "regenerate even if this intake was already processed")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("paceline-gen", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *intakePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: paceline-gen -intake <file or dir> [-out <dir>] [-dry-run] [-force]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	intakes, err := collectIntakeFiles(*intakePath)
	if err != nil {
		log.Error("collecting intake files", "error", err)
		os.Exit(1)
	}
	if len(intakes) == 0 {
		log.Error("no intake JSON files found", "path", *intakePath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := genstate.OpenStateDB(filepath.Join(homeDir, ".paceline-gen"))
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if *dryRun {
		log.Info("DRY RUN mode — plans will be generated and validated but not written")
	}

	gen := plan.NewGenerator(log, Version)
	today := models.DateOf(time.Now())

	var st stats
	for _, path := range intakes {
		st.total++
		if err := processIntake(path, *outDir, *dryRun, *force, gen, state, today, log, &st); err != nil {
			st.errored++
			log.Error("intake failed", "path", path, "error", err)
		}
	}

	fmt.Println()
	fmt.Println("=== Generation Summary ===")
	fmt.Printf("  Intakes total:    %d\n", st.total)
	fmt.Printf("  Plans generated:  %d\n", st.generated)
	fmt.Printf("  Intakes skipped:  %d (already generated)\n", st.skipped)
	fmt.Printf("  Intakes errored:  %d\n", st.errored)
	fmt.Println()

	if st.errored > 0 {
		os.Exit(1)
	}
}

func processIntake(path, outDir string, dryRun, force bool, gen *plan.Generator, state *genstate.StateDB, today models.PlanDate, log *slog.Logger, st *stats) error {
	hash, err := genstate.HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing intake: %w", err)
	}

	if !force && !dryRun {
		done, err := state.IsGenerated(hash)
		if err != nil {
			return fmt.Errorf("checking state: %w", err)
		}
		if done {
			st.skipped++
			log.Info("skipping intake, already generated", "path", path)
			return nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading intake: %w", err)
	}
	var intake models.Intake
	if err := json.Unmarshal(raw, &intake); err != nil {
		return fmt.Errorf("parsing intake: %w", err)
	}

	doc, warnings, err := gen.Generate(&intake, today)
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}
	for _, w := range warnings {
		log.Warn("intake warning", "path", path, "warning", w)
	}
	if err := plan.Validate(doc); err != nil {
		return fmt.Errorf("validating plan: %w", err)
	}

	if dryRun {
		st.generated++
		log.Info("plan generated (not written)", "path", path, "weeks", len(doc.Weeks))
		return nil
	}

	planFile := planFileName(&intake, time.Now())
	outPath := filepath.Join(outDir, planFile)
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}

	if err := state.MarkGenerated(hash, path, planFile); err != nil {
		return fmt.Errorf("recording state: %w", err)
	}

	st.generated++
	log.Info("plan written", "file", outPath, "weeks", len(doc.Weeks))
	return nil
}

// collectIntakeFiles returns the JSON files under path, or path itself if
// it is a file.
func collectIntakeFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}

// planFileName builds the output file name from the athlete's email prefix,
// goal, and generation time.
func planFileName(intake *models.Intake, now time.Time) string {
	goal := intake.Goal
	if goal == "" {
		goal = "marathon"
	}
	goal = strings.ReplaceAll(strings.ToLower(goal), " ", "-")
	return fmt.Sprintf("%s-%s-generated-%s.json",
		intake.EmailPrefix(), goal, now.Format("20060102-150405"))
}
