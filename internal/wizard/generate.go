package wizard

import (
	"bytes"
	"text/template"
)

const configTemplate = `# sdc-booter configuration
# Documentation: https://github.com/nbxorg/sdc-booter

{{- if .Output }}
output: {{ .Output }}
{{- end }}
format: {{ .Format }}

directory:
  inventory:
    api_url: {{ .InventoryURL }}
{{- if .Insecure }}
    insecure: true
{{- end }}
  network:
    api_url: {{ .NetworkURL }}
{{- if .Insecure }}
    insecure: true
{{- end }}

# Tokens are read from the environment:
#   SDC_BOOTER_DIRECTORY_INVENTORY_TOKEN
#   SDC_BOOTER_DIRECTORY_NETWORK_TOKEN
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	if answers.Format == "" {
		answers.Format = "json"
	}

	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}
