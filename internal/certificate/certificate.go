// Package certificate renders exemption certificates for reports whose
// determination found the transaction not reportable.
package certificate

import (
	"fmt"
	"strings"
	"text/template"

	"rrer/pkg/domain"
	"rrer/pkg/serrors"

	"github.com/google/uuid"
)

const certificateText = `EXEMPTION CERTIFICATE

Report:        {{ .ReportID }}
File number:   {{ .FileNumber }}
Determined at: {{ .DeterminedAt }}

This transaction was determined to be NOT REPORTABLE under the Residential
Real Estate Reports rule, on the following ground{{ if gt (len .Reasons) 1 }}s{{ end }}:
{{ range .Reasons }}
  - {{ . }}
{{- end }}

This certificate records the determination as of the date above. A later
change to the transaction facts voids it and requires a new determination.
`

var tmpl = template.Must(template.New("certificate").Parse(certificateText))

// Render produces the certificate text for an exempt report. Reports whose
// live determination is missing or reportable have no certificate; that is an
// ErrInvalidTransition refusal, not an empty document.
func Render(report domain.Report, result domain.DeterminationResult) (string, error) {
	if !result.Exempt() {
		return "", serrors.With(serrors.ErrInvalidTransition,
			"no certificate: determination verdict is %s", result.Verdict)
	}
	if !result.Consistent() {
		return "", fmt.Errorf("could not render certificate: exempt result carries no reasons")
	}

	reasons := make([]string, 0, len(result.Reasons))
	for _, r := range result.Reasons {
		reasons = append(reasons, r.DisplayText)
	}

	var b strings.Builder
	err := tmpl.Execute(&b, struct {
		ReportID     string
		FileNumber   string
		DeterminedAt string
		Reasons      []string
	}{
		ReportID:     uuid.UUID(report.ID).String(),
		FileNumber:   report.FileNumber,
		DeterminedAt: result.DeterminedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
		Reasons:      reasons,
	})
	if err != nil {
		return "", fmt.Errorf("could not render certificate: %w", err)
	}

	return b.String(), nil
}
