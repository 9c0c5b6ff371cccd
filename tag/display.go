package tag

import (
	"fmt"
	"strings"

	"github.com/poiesic/worklens/core"
	"github.com/poiesic/worklens/rules"
)

// statusDisplay holds the presentation properties of one status.
type statusDisplay struct {
	Emoji string
	Text  string
	Color string
}

var statusDisplays = map[core.CopyrightStatus]statusDisplay{
	core.StatusPublicDomain:  {"🌍", "Public Domain - Free to Use", "green"},
	core.StatusExpired:       {"✅", "Copyright Expired - Free to Use", "green"},
	core.StatusLikelyExpired: {"🔁", "Likely Expired - Verify Before Commercial Use", "yellow"},
	core.StatusUnknown:       {"❓", "Unknown Status - Research Required", "gray"},
	core.StatusLikelyActive:  {"⚠️", "Likely Protected - Permission May Be Required", "orange"},
	core.StatusActive:        {"❌", "All Rights Reserved - Permission Required", "red"},
}

func displayFor(status core.CopyrightStatus) statusDisplay {
	if d, ok := statusDisplays[status]; ok {
		return d
	}
	return statusDisplay{"❓", "Unknown", "gray"}
}

// expiryTimeline renders a human-readable account of when protection
// runs out.
func expiryTimeline(exp rules.Expiry) string {
	if exp.Expired {
		if exp.Year == 0 {
			return "Expired (date unknown)"
		}
		yearsAgo := -exp.YearsRemaining
		switch {
		case yearsAgo == 0:
			return "Expired this year"
		case yearsAgo == 1:
			return "Expired 1 year ago"
		default:
			return fmt.Sprintf("Expired %d years ago", yearsAgo)
		}
	}

	if exp.Year == 0 {
		return "Expiry date unknown"
	}

	remaining := exp.YearsRemaining
	switch {
	case remaining == 0:
		return "Expires this year"
	case remaining == 1:
		return "Expires in 1 year"
	case remaining <= 5:
		return fmt.Sprintf("Expires in %d years (soon)", remaining)
	case remaining <= 20:
		return fmt.Sprintf("Expires in %d years", remaining)
	default:
		decade := (remaining / 10) * 10
		return fmt.Sprintf("Expires in ~%d+ years", decade)
	}
}

var useLabels = map[core.UseType]string{
	core.UsePersonal:     "👤 Personal Use",
	core.UseEducational:  "📚 Educational Use",
	core.UseCommercial:   "💼 Commercial Use",
	core.UseRemix:        "🔄 Remix/Adaptation",
	core.UseDerivative:   "🎨 Derivative Works",
	core.UseDistribution: "📤 Distribution",
}

// summarizeUses renders the per-use decisions as checklist lines.
func summarizeUses(uses []core.AllowedUse) []string {
	summary := make([]string, 0, len(uses))
	for _, u := range uses {
		label, ok := useLabels[u.Use]
		if !ok {
			label = u.Use.String()
		}
		switch {
		case u.Allowed && u.Conditions != "":
			summary = append(summary, "✓ "+label+" (with conditions)")
		case u.Allowed:
			summary = append(summary, "✓ "+label)
		default:
			summary = append(summary, "✗ "+label)
		}
	}
	return summary
}

// confidenceLevel buckets a score into a display label.
func confidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "High"
	case confidence >= 0.6:
		return "Medium"
	case confidence >= 0.4:
		return "Low"
	default:
		return "Very Low"
	}
}

// riskLevel maps the status color to a usage risk label.
func riskLevel(color string) string {
	switch color {
	case "green":
		return "Low"
	case "yellow":
		return "Medium"
	case "orange":
		return "High"
	case "red":
		return "Very High"
	default:
		return "Unknown"
	}
}

// disclaimer is the jurisdiction-specific legal footer carried by every
// tag.
func disclaimer(jurisdiction string) string {
	return fmt.Sprintf(
		"This analysis is based on %s copyright law and is provided for informational "+
			"purposes only. It does not constitute legal advice. Copyright status may vary by "+
			"jurisdiction and specific circumstances. Always consult a legal professional for "+
			"definitive guidance on copyright matters.", jurisdiction)
}

// confidenceBar renders a five-slot visual bar for the compact form.
func confidenceBar(score float64) string {
	filled := int(score * 5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 5-filled)
}

// Compact renders a tag as a single embeddable line.
func Compact(t *core.SmartTag) string {
	return fmt.Sprintf("%s [%s] | ⏱ %s | %s %s | 🌐 %s",
		t.StatusEmoji, t.StatusText, t.ExpiryTimeline,
		confidenceBar(t.ConfidenceScore), t.ConfidenceLevel, t.Jurisdiction)
}
