package pattern

import (
	"fmt"

	"github.com/stencil-design/stencil/canvas"
)

// Report is the aggregated result of validating every pattern instance found
// in a document. All instances and manifests are checked; the report collects
// every finding rather than stopping at the first failure, which is what a
// design-review tool needs to show inline badges for a whole document.
type Report struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// Validator cross-checks detected pattern instances against their manifests.
type Validator struct {
	registry *Registry
	detector *Detector
}

// NewValidator returns a validator reading manifests from the given registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{
		registry: registry,
		detector: NewDetector(registry),
	}
}

// ValidatePatterns runs detection on the document and produces a compliance
// report. For every instance: required definitions absent from the node
// mappings become errors, required relationships with an unresolved endpoint
// become errors, the instance's own detection errors become warnings, and an
// incomplete instance contributes a suggestion to finish the pattern.
// The report is idempotent for an unmodified document.
func (v *Validator) ValidatePatterns(doc *canvas.Document) Report {
	report := Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	for _, inst := range v.detector.DetectPatterns(doc) {
		m := v.registry.Get(inst.PatternID)
		if m == nil {
			// Registry changed between detection and validation; nothing to
			// cross-check this instance against.
			continue
		}

		for _, def := range m.Structure {
			if !def.Required {
				continue
			}
			if _, ok := inst.NodeMappings[def.ID]; !ok {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"Missing required node %q in %s pattern", def.Name, m.Name))
			}
		}

		for _, rel := range m.Relationships {
			if !rel.Required {
				continue
			}
			_, fromOK := inst.NodeMappings[rel.From]
			_, toOK := inst.NodeMappings[rel.To]
			if !fromOK || !toOK {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"Unsatisfied required relationship %q -> %q (%s) in %s pattern",
					rel.From, rel.To, rel.Type, m.Name))
			}
		}

		report.Warnings = append(report.Warnings, inst.ValidationErrors...)

		if !inst.IsComplete {
			report.Suggestions = append(report.Suggestions, fmt.Sprintf(
				"Complete the %s pattern rooted at node %q by adding its missing nodes",
				m.Name, inst.RootNodeID))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
