package aisync

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/archmind/archmind/pkg/design"
)

// Prompt builders. The advisory prompts summarize the current design as
// compact JSON; the design prompts additionally pin down the exact document
// contract enforced by ParseDesignPayload/ValidateConnection on receipt.

const systemExpert = "You are an expert system and manufacturing architecture consultant. " +
	"Be accurate, practical, and concise."

const designContract = `Return ONLY a JSON object, no prose and no code fences, with:
- "parts": array of components, each with "type" (lowercase component key),
  "name", "functionality", and optionally "customColor" (#RRGGBB),
  "technology", "version", "capacity", "sla", "x", "y".
- "connections": array of directed links, each with "from", "to",
  "linkType", "color" (strict #RRGGBB), optional "strokeWidth" (1-4) and
  "dashArray" (comma-separated integers, e.g. "5,5").
- "description": a short explanation of the design.
Known linkType values: data-flow, async-flow, dependency. You may introduce
additional linkType names for domain-specific relationships.`

func partsSummary(parts []design.Part) string {
	type brief struct {
		ID            int    `json:"id"`
		Name          string `json:"name"`
		Type          string `json:"type"`
		Functionality string `json:"functionality,omitempty"`
	}
	briefs := make([]brief, 0, len(parts))
	for _, p := range parts {
		briefs = append(briefs, brief{ID: p.ID, Name: p.Name, Type: p.Type, Functionality: p.Functionality})
	}
	b, _ := json.MarshalIndent(briefs, "", "  ")
	return string(b)
}

func connectionsSummary(conns []design.Connection) string {
	type brief struct {
		From     int    `json:"from"`
		To       int    `json:"to"`
		LinkType string `json:"linkType"`
	}
	briefs := make([]brief, 0, len(conns))
	for _, c := range conns {
		briefs = append(briefs, brief{From: c.From, To: c.To, LinkType: c.LinkType})
	}
	b, _ := json.MarshalIndent(briefs, "", "  ")
	return string(b)
}

func generatePrompt(requirements, designType string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Design a complete %s architecture for the following requirements:\n\n%s\n\n",
		orDefault(designType, "system"), requirements)
	sb.WriteString(designContract)
	sb.WriteString("\nConnections use 0-based indices into the parts array for \"from\" and \"to\".")
	return sb.String()
}

func editPrompt(request string, parts []design.Part, conns []design.Connection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Modify the following existing design per this request:\n\n%s\n\nCurrent parts:\n%s\n\nCurrent connections:\n%s\n\n",
		request, partsSummary(parts), connectionsSummary(conns))
	sb.WriteString(designContract)
	sb.WriteString("\nReturn the FULL modified design. Keep the existing \"id\" on every part you " +
		"retain, omit ids only on newly added parts, and use real part ids for \"from\" and \"to\".")
	return sb.String()
}

func suggestionsPrompt(parts []design.Part, conns []design.Connection) string {
	return fmt.Sprintf(`Analyze the following system:

Parts: %s

Connections: %s

Please provide:
1. Process optimization suggestions
2. Potential bottlenecks or issues
3. Recommended improvements
4. Quality control checkpoints

Keep the response concise and actionable.`, partsSummary(parts), connectionsSummary(conns))
}

func partRecommendationsPrompt(parts []design.Part, context string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on the following existing parts:\n%s\n\n", partsSummary(parts))
	if context != "" {
		fmt.Fprintf(&sb, "Additional context: %s\n\n", context)
	}
	sb.WriteString(`Suggest additional parts that would complement this system. Include:
1. Part name and type
2. How it integrates with existing parts
3. Benefits it would provide
4. Estimated cost impact (low/medium/high)

Focus on practical, commonly used components.`)
	return sb.String()
}

func analysisPrompt(parts []design.Part, conns []design.Connection) string {
	return fmt.Sprintf(`Analyze the efficiency of this workflow:

Parts: %s

Connections: %s

Provide analysis on:
1. Workflow efficiency score (1-10)
2. Material and data flow optimization
3. Potential automation opportunities
4. Resource utilization improvements

Be specific and provide actionable insights.`, partsSummary(parts), connectionsSummary(conns))
}

func troubleshootingPrompt(issue string, parts []design.Part) string {
	return fmt.Sprintf(`Issue: %s

Relevant parts: %s

Provide troubleshooting suggestions including:
1. Possible root causes
2. Step-by-step diagnostic procedures
3. Preventive measures
4. When to escalate to specialists

Focus on practical, safety-first approaches.`, issue, partsSummary(parts))
}

func advicePrompt(query string, parts []design.Part, conns []design.Connection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Query: %s\n\n", query)
	if len(parts) > 0 {
		fmt.Fprintf(&sb, "Current system context:\nParts: %s\nConnections: %s\n\n",
			partsSummary(parts), connectionsSummary(conns))
	}
	sb.WriteString("Provide helpful, accurate, and practical advice. Focus on industry best " +
		"practices, safety considerations, and cost-effective solutions.")
	return sb.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
