package wizard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	InventoryURL string
	NetworkURL   string
	Insecure     bool

	Format string // json, yaml
	Output string // file path, empty for stdout
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		InventoryURL: detection.InventoryURL,
		NetworkURL:   detection.NetworkURL,
		Format:       "json",
	}

	// Build detection summary
	var hints []string
	if detection.InventoryURL != "" {
		hints = append(hints, fmt.Sprintf("inventory endpoint from environment: %s", detection.InventoryURL))
	}
	if detection.NetworkURL != "" {
		hints = append(hints, fmt.Sprintf("network endpoint from environment: %s", detection.NetworkURL))
	}
	if detection.SMBIOSUUID {
		hints = append(hints, "firmware platform UUID available (identifier may be omitted)")
	}

	desc := "Point sdc-booter at the two fleet directory services."
	if len(hints) > 0 {
		desc += "\n\nAuto-detected:\n  " + strings.Join(hints, "\n  ")
	}

	endpointForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Host inventory service URL").
				Description(desc).
				Placeholder("https://inventory.internal:8080").
				Validate(validateURL).
				Value(&answers.InventoryURL),
			huh.NewInput().
				Title("Network service URL").
				Placeholder("https://netdir.internal:8080").
				Validate(validateURL).
				Value(&answers.NetworkURL),
			huh.NewConfirm().
				Title("Skip TLS certificate verification?").
				Value(&answers.Insecure),
		),
	)

	if err := endpointForm.Run(); err != nil {
		return nil, err
	}

	outputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Document format").
				Options(
					huh.NewOption("JSON", "json"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&answers.Format),
			huh.NewInput().
				Title("Output file").
				Description("Leave empty to print the document to stdout.").
				Value(&answers.Output),
		),
	)

	if err := outputForm.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

func validateURL(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("must be an absolute URL including scheme and host")
	}
	return nil
}
