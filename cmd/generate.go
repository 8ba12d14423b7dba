package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbxorg/sdc-booter/internal/assemble"
	"github.com/nbxorg/sdc-booter/internal/config"
	"github.com/nbxorg/sdc-booter/internal/directory"
	"github.com/nbxorg/sdc-booter/internal/localident"
	"github.com/nbxorg/sdc-booter/internal/logging"
	"github.com/nbxorg/sdc-booter/internal/resolve"
	"github.com/nbxorg/sdc-booter/internal/ui"
)

var (
	outputFile   string
	outputFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate [host]",
	Short: "Generate the boot network document for a host",
	Long: `Resolve a host by hostname or UUID (or the local host when omitted),
determine its admin interface, and emit the boot network document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: stdout)")
	generateCmd.Flags().StringVar(&outputFormat, "format", "", "document format: json, yaml")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'sdc-booter init' to create a config file"))
		return err
	}

	if outputFile != "" {
		cfg.Output = outputFile
	}
	if outputFormat != "" {
		cfg.Format = outputFormat
	}

	renderer, err := assemble.RendererFor(cfg.Format)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Invalid format", err.Error(), ""))
		return err
	}

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}

	log := logging.New(verbose)
	pipeline := resolve.NewPipeline(
		resolve.New(newDirectory(cfg), &localident.SMBIOS{Path: cfg.Identity.UUIDFile}, log),
		&assemble.Assembler{},
		log,
	)

	pipeline.OnStage = func(r resolve.StageResult) {
		if r.Err != nil {
			ui.StageFailed(r.Name)
		} else {
			ui.StageDone(r.Name)
		}
	}

	doc, _, err := pipeline.Run(cmd.Context(), identifier)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Resolution failed", err.Error(), ""))
		return err
	}

	out, err := renderer.Render(doc)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render document", err.Error(), ""))
		return err
	}

	if cfg.Output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(cfg.Output, out, 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Wrote %s (host %s, admin nic %s)", cfg.Output, doc.Hostname, doc.AdminNic.MAC))
	return nil
}

func newDirectory(cfg *config.Config) *directory.Directory {
	timeout := time.Duration(cfg.Directory.TimeoutSeconds) * time.Second
	return &directory.Directory{
		Inventory: directory.NewInventoryClient(directory.ClientOptions{
			APIURL:   cfg.Directory.Inventory.APIURL,
			Token:    cfg.Directory.Inventory.Token,
			Insecure: cfg.Directory.Inventory.Insecure,
			Timeout:  timeout,
		}),
		Network: directory.NewNetworkClient(directory.ClientOptions{
			APIURL:   cfg.Directory.Network.APIURL,
			Token:    cfg.Directory.Network.Token,
			Insecure: cfg.Directory.Network.Insecure,
			Timeout:  timeout,
		}),
	}
}
