package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbxorg/sdc-booter/internal/config"
	"github.com/nbxorg/sdc-booter/internal/directory"
	"github.com/nbxorg/sdc-booter/internal/localident"
	"github.com/nbxorg/sdc-booter/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your sdc-booter.yml configuration",
	Long: `Check that both directory endpoints are configured with usable URLs and
that a local identity source is available.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type endpointCheck struct {
	name string
	errs []directory.ValidationError
}

// reportChecks prints one OK line per clean endpoint and one ERR line per
// validation error, returning the counts for the summary line.
func reportChecks(checks []endpointCheck) (passed, failed int) {
	for _, c := range checks {
		if len(c.errs) == 0 {
			ui.ValidationOK(c.name, "endpoint configured")
			passed++
			continue
		}
		for _, ve := range c.errs {
			ui.ValidationErr(ve.Field, ve.Message, ve.Suggestion)
			failed++
		}
	}
	return passed, failed
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'sdc-booter init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating sdc-booter.yml..."))

	dir := newDirectory(cfg)
	passed, failed := reportChecks([]endpointCheck{
		{name: "inventory", errs: dir.Inventory.Validate()},
		{name: "network", errs: dir.Network.Validate()},
	})

	uuidFile := cfg.Identity.UUIDFile
	if uuidFile == "" {
		uuidFile = localident.DefaultUUIDFile
	}
	if _, err := os.Stat(uuidFile); err == nil {
		ui.ValidationOK("identity", uuidFile)
		passed++
	} else {
		ui.Warn(fmt.Sprintf("no local identity source at %s; a host identifier must always be given", uuidFile))
	}

	fmt.Println()
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}

	fmt.Printf("%d checks passed, %d errors\n", passed, failed)
	return fmt.Errorf("%d validation errors", failed)
}
