package cli

import (
	"strings"

	"github.com/vburojevic/errlens/internal/output"
)

// SchemaCmd outputs JSON Schema for the report
type SchemaCmd struct {
	Type []string `short:"t" help:"Schemas to include (report,empty). Default: all"`
}

// Run executes the schema command
func (c *SchemaCmd) Run(globals *Globals) error {
	schemas := map[string]interface{}{
		"report": reportSchema(),
		"empty":  emptyReportSchema(),
	}

	typesToOutput := c.Type
	if len(typesToOutput) == 0 {
		typesToOutput = []string{"report", "empty"}
	}

	schemaOutput := map[string]interface{}{
		"$schema":       "http://json-schema.org/draft-07/schema#",
		"title":         "errlens Report Schemas",
		"description":   "JSON Schema definitions for the errlens report",
		"schemaVersion": output.SchemaVersion,
		"definitions":   map[string]interface{}{},
	}

	defs := schemaOutput["definitions"].(map[string]interface{})
	for _, t := range typesToOutput {
		t = strings.ToLower(strings.TrimSpace(t))
		if schema, ok := schemas[t]; ok {
			defs[t] = schema
		}
	}

	return writeJSON(globals, schemaOutput)
}

func periodProperties() map[string]interface{} {
	return map[string]interface{}{
		"period": map[string]interface{}{
			"type": "string",
			"enum": []string{"today", "week", "month"},
		},
		"start": dateProperty("First day of the window (inclusive)"),
		"end":   dateProperty("Last day of the window (inclusive), today in UTC"),
	}
}

func dateProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"pattern":     `^\d{4}-\d{2}-\d{2}$`,
		"description": description,
	}
}

func countsProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"description":          description,
		"additionalProperties": map[string]interface{}{"type": "integer", "minimum": 1},
	}
}

func reportSchema() map[string]interface{} {
	props := periodProperties()
	props["total"] = map[string]interface{}{"type": "integer", "minimum": 1}
	props["days"] = map[string]interface{}{
		"type":        "array",
		"items":       dateProperty("Day with at least one error"),
		"description": "Distinct days, ascending",
	}
	props["first"] = map[string]interface{}{"type": "string", "description": "First matching line in file order"}
	props["last"] = map[string]interface{}{"type": "string", "description": "Last matching line in file order"}
	props["bySignature"] = countsProperty("Signature counts, highest first")
	props["byDay"] = map[string]interface{}{
		"type": "object",
		"additionalProperties": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"total":      map[string]interface{}{"type": "integer"},
				"signatures": countsProperty("Signature counts for the day"),
			},
			"required": []string{"total", "signatures"},
		},
	}
	props["newSignatures"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Signatures not in the store before this run (--persist-signatures only)",
	}

	return map[string]interface{}{
		"type":        "object",
		"title":       "Report",
		"description": "Aggregated error lines for a period",
		"properties":  props,
		"required":    []string{"period", "start", "end", "total", "days", "first", "last", "bySignature", "byDay"},
	}
}

func emptyReportSchema() map[string]interface{} {
	props := periodProperties()
	props["total"] = map[string]interface{}{"type": "integer", "const": 0}
	props["message"] = map[string]interface{}{"type": "string", "const": output.NoErrorsMessage}

	return map[string]interface{}{
		"type":                 "object",
		"title":                "Empty Report",
		"description":          "No error lines fell in the period",
		"properties":           props,
		"required":             []string{"period", "start", "end", "total", "message"},
		"additionalProperties": false,
	}
}
