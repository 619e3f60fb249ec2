package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lokesh8898/nautilus/src/nsecalendar"
	"github.com/lokesh8898/nautilus/src/utils"
)

type RunArgs struct {
	GoEnv string
	Year  int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/expiry_report/main.go --year 2024",
	Short: "Print the month-by-month expiry schedule for a year",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		year, err := cmd.Flags().GetInt("year")
		if err != nil {
			log.Fatalf("error getting year: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv: goEnv,
			Year:  year,
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

	calendar := nsecalendar.NewHolidayCalendar()

	if !calendar.CoversYear(args.Year) {
		log.Warnf("holiday table does not cover %d: expiries are weekend-adjusted only", args.Year)
	}

	fmt.Println(calendar.AnnualExpiryReport(args.Year))

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().Int("year", 2024, "The year to report on.")

	cobra.CheckErr(runCmd.Execute())
}
