package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbxorg/sdc-booter/internal/ui"
	"github.com/nbxorg/sdc-booter/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an sdc-booter.yml config file interactively",
	Long: `Detect directory endpoints from the environment and generate a config
file through an interactive wizard.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "sdc-booter.yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("%s already exists.\n", configPath)
		fmt.Print("Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println(ui.Bold("Scanning environment..."))
	detection := wizard.Detect(nil)

	answers, err := wizard.Run(detection)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Wizard failed", err.Error(), ""))
		return err
	}

	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to generate config", err.Error(), ""))
		return err
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write config", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Wrote %s", configPath))
	fmt.Println(ui.Hint("Run 'sdc-booter generate' to produce a boot network document."))
	return nil
}
