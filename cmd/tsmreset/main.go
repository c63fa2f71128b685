package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/coolbeans/tsmreset/pkg/database"
	"github.com/coolbeans/tsmreset/pkg/pipeline"
	"github.com/coolbeans/tsmreset/pkg/segment"
	"github.com/coolbeans/tsmreset/pkg/source"
	"github.com/coolbeans/tsmreset/pkg/watch"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tsmreset",
		Short: "TSM reset procedure extractor",
		Long: `Tsmreset converts the A318/A319/A320/A321 System Reset Guidelines
(TSM ATA 24-00-00-810) into a structured reset database.

It segments the extracted page text into SUBTASK blocks and parses each
block into one reviewed database entry: applicable aircraft, ECAM messages,
ATA chapter, reset procedure steps, advisories, and the circuit breaker
table. Extraction is heuristic and best-effort; the output is meant to be
corrected in the admin panel afterwards.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(validateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract reset procedures from a TSM document",
		Long: `Extract reset procedures from a TSM PDF (or pre-extracted text file)
and write the structured database.

Example:
  tsmreset extract --source resets.pdf --out database.json
  tsmreset extract --source resets.pdf --out database.json --merge -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, _ := cmd.Flags().GetString("source")
			outPath, _ := cmd.Flags().GetString("out")
			verbose, _ := cmd.Flags().GetBool("verbose")
			merge, _ := cmd.Flags().GetBool("merge")
			reportPath, _ := cmd.Flags().GetString("report")

			return runExtraction(sourcePath, outPath, verbose, merge, reportPath)
		},
	}

	cmd.Flags().String("source", "resets.pdf", "Path to the TSM document (PDF or text)")
	cmd.Flags().String("out", "database.json", "Output database file")
	cmd.Flags().BoolP("verbose", "v", false, "Per-block progress output")
	cmd.Flags().Bool("merge", false, "Merge with the existing database (append new entries, keep existing by id)")
	cmd.Flags().String("report", "", "Write a YAML run report to this path")

	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-extract whenever the source document changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, _ := cmd.Flags().GetString("source")
			outPath, _ := cmd.Flags().GetString("out")
			verbose, _ := cmd.Flags().GetBool("verbose")
			merge, _ := cmd.Flags().GetBool("merge")

			if err := runExtraction(sourcePath, outPath, verbose, merge, ""); err != nil {
				return err
			}

			watcher := watch.New(sourcePath, time.Second, func(path string) {
				fmt.Printf("\nChange detected: %s\n", path)
				if err := runExtraction(path, outPath, verbose, merge, ""); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			})
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("\nWatching %s (Ctrl-C to stop)\n", sourcePath)
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			<-sigs
			return nil
		},
	}

	cmd.Flags().String("source", "resets.pdf", "Path to the TSM document (PDF or text)")
	cmd.Flags().String("out", "database.json", "Output database file")
	cmd.Flags().BoolP("verbose", "v", false, "Per-block progress output")
	cmd.Flags().Bool("merge", false, "Merge with the existing database on each run")

	return cmd
}

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate statistics for an extracted database",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")

			doc, err := database.Load(dbPath)
			if err != nil {
				return err
			}

			stats := doc.Stats()
			fmt.Printf("Database: %s (version %s, updated %s)\n", dbPath, doc.Version, doc.LastUpdated)
			fmt.Printf("  Entries:         %d\n", stats.TotalMessages)
			fmt.Printf("  With procedure:  %d\n", stats.WithProcedure)
			fmt.Printf("  With CB table:   %d\n", stats.WithCBTable)
			fmt.Printf("  Warnings:        %d\n", stats.Warnings)
			fmt.Printf("  Cautions:        %d\n", stats.Cautions)

			fmt.Println("  By aircraft:")
			for _, aircraft := range sortedKeys(stats.ByAircraft) {
				fmt.Printf("    %-4s %d\n", aircraft, stats.ByAircraft[aircraft])
			}
			fmt.Println("  By ATA chapter:")
			for _, ata := range sortedKeys(stats.ByATA) {
				fmt.Printf("    %-4s %d\n", ata, stats.ByATA[ata])
			}
			return nil
		},
	}

	cmd.Flags().String("db", "database.json", "Database file to inspect")

	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an extracted database against its structural invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := cmd.Flags().GetString("db")

			doc, err := database.Load(dbPath)
			if err != nil {
				return err
			}

			problems := doc.Validate()
			if len(problems) == 0 {
				fmt.Printf("%s: %d entries, no problems found\n", dbPath, len(doc.Messages))
				return nil
			}

			for _, problem := range problems {
				fmt.Fprintf(os.Stderr, "  - %s\n", problem)
			}
			return fmt.Errorf("%s: %d problems found", dbPath, len(problems))
		},
	}

	cmd.Flags().String("db", "database.json", "Database file to validate")

	return cmd
}

// runExtraction is the full pipeline: load pages, segment, parse, merge,
// persist, report.
func runExtraction(sourcePath, outPath string, verbose, merge bool, reportPath string) error {
	if _, err := os.Stat(sourcePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source document not found: %s", sourcePath)
		}
		return fmt.Errorf("failed to stat source: %w", err)
	}

	fmt.Printf("Opening: %s\n", sourcePath)

	var pages []source.Page
	var err error
	if strings.EqualFold(filepath.Ext(sourcePath), ".pdf") {
		pages, err = source.ExtractPages(sourcePath)
	} else {
		pages, err = source.LoadTextFile(sourcePath)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Extracted %d pages\n", len(pages))

	blocks := segment.NewSegmenter().Split(pages)
	fmt.Printf("Found %d SUBTASK blocks\n", len(blocks))

	runner := &pipeline.Runner{Verbose: verbose}
	records, skipped := runner.Run(blocks)

	report := pipeline.NewReport(sourcePath, outPath)
	report.Pages = len(pages)
	report.Blocks = len(blocks)
	report.Skipped = skipped

	messages := records
	if merge {
		if _, statErr := os.Stat(outPath); statErr == nil {
			existing, loadErr := database.Load(outPath)
			if loadErr != nil {
				return fmt.Errorf("cannot merge: %w", loadErr)
			}
			merged, added := database.MergeMessages(existing.Messages, records)
			messages = merged
			report.Merged = true
			report.NewEntries = added
			report.KeptEntries = len(existing.Messages)
		}
	}
	report.Written = len(messages)

	doc := database.New(sourcePath, messages)
	if err := doc.Save(outPath); err != nil {
		return err
	}

	if reportPath != "" {
		if err := report.WriteYAML(reportPath); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Print(report.Summary())
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
