// Package migrate upgrades persisted programme documents written by
// older builds. Each step is a pure transform on the raw JSON document
// map; steps run in sequence until the document reaches the current
// schema version.
package migrate

import (
	"fmt"

	"github.com/alexanderramin/provost/internal/domain"
)

// Doc is the raw decoded JSON document.
type Doc = map[string]any

// Step upgrades a document from exactly FromVersion to FromVersion+1.
type Step struct {
	FromVersion int
	Apply       func(Doc) Doc
}

// Chain is the ordered upgrade sequence.
var Chain = []Step{
	{FromVersion: 1, Apply: standardToRefs},
	{FromVersion: 2, Apply: flatDeliveryToVersion},
}

// Upgrade runs every applicable step against the document. Documents
// with no schemaVersion field are treated as version 1. Versions newer
// than the current build are rejected.
func Upgrade(doc Doc) (Doc, error) {
	v := docVersion(doc)
	if v > domain.CurrentSchemaVersion {
		return nil, fmt.Errorf("document schema version %d is newer than this build supports (%d)", v, domain.CurrentSchemaVersion)
	}
	for _, step := range Chain {
		if v != step.FromVersion {
			continue
		}
		doc = step.Apply(doc)
		v++
		doc["schemaVersion"] = v
	}
	if v != domain.CurrentSchemaVersion {
		return nil, fmt.Errorf("no upgrade path from schema version %d", docVersion(doc))
	}
	return doc, nil
}

func docVersion(doc Doc) int {
	switch v := doc["schemaVersion"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 1
	}
}

// standardToRefs (v1 -> v2) turns the legacy single "standard" string
// into the standardRefs list.
func standardToRefs(doc Doc) Doc {
	if _, ok := doc["standardRefs"]; ok {
		delete(doc, "standard")
		return doc
	}
	refs := []any{}
	if s, ok := doc["standard"].(string); ok && s != "" {
		refs = append(refs, s)
	}
	doc["standardRefs"] = refs
	delete(doc, "standard")
	return doc
}

// flatDeliveryToVersion (v2 -> v3) moves the legacy flat delivery
// fields (modality, pattern, proctoring on the document root) onto the
// first version, creating one when none exists.
func flatDeliveryToVersion(doc Doc) Doc {
	modality, hasModality := doc["modality"].(string)
	pattern, hasPattern := doc["pattern"].(map[string]any)
	proctoring, hasProctoring := doc["proctoring"].(string)
	defer func() {
		delete(doc, "modality")
		delete(doc, "pattern")
		delete(doc, "proctoring")
	}()

	if !hasModality && !hasPattern && !hasProctoring {
		return doc
	}

	versions, _ := doc["versions"].([]any)
	var first map[string]any
	if len(versions) > 0 {
		first, _ = versions[0].(map[string]any)
	}
	if first == nil {
		first = map[string]any{
			"id":     "migrated-v1",
			"label":  "Full-time",
			"stages": []any{},
		}
		versions = append([]any{first}, versions...)
	}

	if hasModality {
		if _, ok := first["modality"]; !ok {
			first["modality"] = modality
		}
	}
	if hasPattern {
		if _, ok := first["pattern"]; !ok {
			first["pattern"] = pattern
		}
	}
	if hasProctoring {
		if _, ok := first["proctoring"]; !ok {
			first["proctoring"] = proctoring
		}
	}
	doc["versions"] = versions
	return doc
}
