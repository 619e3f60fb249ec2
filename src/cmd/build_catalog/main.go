package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/nsecalendar"
	"github.com/lokesh8898/nautilus/src/transform"
	"github.com/lokesh8898/nautilus/src/utils"
)

type RunArgs struct {
	GoEnv      string
	InputDir   string
	OutputDir  string
	ConfigFile string
	Symbols    []string
	Start      string
	End        string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/build_catalog/main.go --input data/partitions --output data/catalog",
	Short: "Build the instrument catalog from date partitioned bars",
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

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		symbols, err := cmd.Flags().GetStringSlice("symbols")
		if err != nil {
			log.Fatalf("error getting symbols: %v", err)
		}

		start, err := cmd.Flags().GetString("start")
		if err != nil {
			log.Fatalf("error getting start: %v", err)
		}

		end, err := cmd.Flags().GetString("end")
		if err != nil {
			log.Fatalf("error getting end: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:      goEnv,
			InputDir:   inputDir,
			OutputDir:  outputDir,
			ConfigFile: configFile,
			Symbols:    symbols,
			Start:      start,
			End:        end,
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

	var config marketmodels.CatalogConfigYAML
	if args.ConfigFile != "" {
		data, err := os.ReadFile(args.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to read catalog config: %v", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to unmarshal catalog config: %v", err)
		}
	}

	startDate, endDate, err := config.DateRange()
	if err != nil {
		return err
	}

	if args.Start != "" {
		startDate, err = time.Parse("2006-01-02", args.Start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %v", args.Start, err)
		}
	}

	if args.End != "" {
		endDate, err = time.Parse("2006-01-02", args.End)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %v", args.End, err)
		}
	}

	symbols := config.Symbols
	if len(args.Symbols) > 0 {
		symbols = args.Symbols
	}

	builder := &transform.CatalogBuilder{
		InputDir:  args.InputDir,
		OutputDir: args.OutputDir,
		Venue:     config.Venue,
		Symbols:   symbols,
		StartDate: startDate,
		EndDate:   endDate,
		Calendar:  nsecalendar.NewHolidayCalendar(),
	}

	summary, err := builder.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(summary.String())

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("input", "", "The directory containing date partitioned bars.")
	runCmd.PersistentFlags().String("output", "", "The directory to write the catalog to.")
	runCmd.PersistentFlags().String("config", "", "Optional yaml build configuration.")
	runCmd.PersistentFlags().StringSlice("symbols", []string{}, "Restrict the build to these symbols.")
	runCmd.PersistentFlags().String("start", "", "The earliest session date to include, YYYY-MM-DD.")
	runCmd.PersistentFlags().String("end", "", "The latest session date to include, YYYY-MM-DD.")

	runCmd.MarkPersistentFlagRequired("input")
	runCmd.MarkPersistentFlagRequired("output")

	cobra.CheckErr(runCmd.Execute())
}
