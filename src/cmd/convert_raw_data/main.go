package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lokesh8898/nautilus/src/cmd/convert_raw_data/run"
	"github.com/lokesh8898/nautilus/src/utils"
)

type RunArgs struct {
	GoEnv     string
	InputDir  string
	OutputDir string
	Workers   int
	Start     string
	End       string
	DryRun    bool
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/convert_raw_data/main.go --input data/raw --output data/partitions",
	Short: "Convert raw NSE csv exports into date partitioned bar files",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		inputDir, err := cmd.Flags().GetString("input")
		if err != nil {
			log.Fatalf("error getting input: %v", err)
		}

		outputDir, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatalf("error getting output: %v", err)
		}

		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			log.Fatalf("error getting workers: %v", err)
		}

		start, err := cmd.Flags().GetString("start")
		if err != nil {
			log.Fatalf("error getting start: %v", err)
		}

		end, err := cmd.Flags().GetString("end")
		if err != nil {
			log.Fatalf("error getting end: %v", err)
		}

		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			log.Fatalf("error getting dry-run: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:     goEnv,
			InputDir:  inputDir,
			OutputDir: outputDir,
			Workers:   workers,
			Start:     start,
			End:       end,
			DryRun:    dryRun,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		return fmt.Errorf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		return fmt.Errorf("error initializing environment variables: %v", err)
	}

	startDate, endDate, err := parseDateRange(args.Start, args.End)
	if err != nil {
		return err
	}

	summary, err := run.Exec(context.Background(), run.Args{
		InputDir:  args.InputDir,
		OutputDir: args.OutputDir,
		Workers:   args.Workers,
		StartDate: startDate,
		EndDate:   endDate,
		DryRun:    args.DryRun,
	})

	if err != nil {
		return err
	}

	fmt.Println(summary.String())

	return nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	var startDate, endDate time.Time

	if start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %v", start, err)
		}

		startDate = parsed
	}

	if end != "" {
		parsed, err := time.Parse("2006-01-02", end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %v", end, err)
		}

		endDate = parsed
	}

	return startDate, endDate, nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("input", "", "The directory containing raw csv exports.")
	runCmd.PersistentFlags().String("output", "", "The directory to write date partitioned bars to.")
	runCmd.PersistentFlags().Int("workers", 0, "The number of concurrent file workers. Defaults to the CPU count.")
	runCmd.PersistentFlags().String("start", "", "The earliest session date to convert, YYYY-MM-DD.")
	runCmd.PersistentFlags().String("end", "", "The latest session date to convert, YYYY-MM-DD.")
	runCmd.PersistentFlags().Bool("dry-run", false, "Log what would be written without writing.")

	runCmd.MarkPersistentFlagRequired("input")
	runCmd.MarkPersistentFlagRequired("output")

	cobra.CheckErr(runCmd.Execute())
}
