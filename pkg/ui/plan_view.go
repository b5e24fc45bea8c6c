package ui

import (
	"fmt"
	"strings"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

func kv(label, value string) string {
	return StyleLabel.Render(label+":") + " " + StyleText.Render(value)
}

// RenderPlan formats a plan for the terminal.
func RenderPlan(p entities.FarmingPlan) string {
	in := p.Input
	var b strings.Builder

	b.WriteString(StyleTitle.Render("🌱 Vertical Farming Plan for " + in.Location))
	b.WriteString("\n\n")

	summary := strings.Join([]string{
		StyleLabel.Render("Climate zone:") + " " + StyleZone.Render(strings.ToUpper(string(p.ZoneID))),
		kv("Conditions", fmt.Sprintf("%.1f°C, %.1f%% humidity, %s", in.AvgTempC, in.HumidityPct, in.LightSource.Label())),
		kv("Vertical space", fmt.Sprintf("%.1fm (%d tiers)", in.VerticalSpaceM, p.Layout.TierCount)),
		kv("Growing area", fmt.Sprintf("%.1fm × %.1fm (%.1fm² per tier, %.1fm² total)",
			in.WidthM, in.DepthM, p.Layout.AreaSqm, p.Layout.GrowingAreaSqm)),
	}, "\n")
	b.WriteString(StyleSummaryBox.Render(summary))
	b.WriteString("\n\n")

	b.WriteString(StyleSectionTitle.Render("Recommended crops"))
	b.WriteString("\n")
	if len(p.Crops) == 0 {
		b.WriteString(StyleWarning.Render("  No crops in the catalog suit this climate and light source."))
		b.WriteString("\n")
	}
	for i, c := range p.Crops {
		perTier := "n/a"
		if c.TierCount > 0 {
			perTier = fmt.Sprint(c.SeedsPerTier)
		}
		fmt.Fprintf(&b, "\n  %d. %s\n", i+1, StyleCrop.Render(string(c.CropID)))
		for _, line := range []string{
			kv("Seeds", fmt.Sprintf("%d total (%s per tier)", c.TotalSeeds, perTier)),
			kv("Water", fmt.Sprintf("%.1f L/day (%s)", c.WaterLitersPerDay, c.WaterMethod)),
			kv("Light", fmt.Sprintf("%.1f h/day at %d lux", c.LightHoursDaily, c.LightIntensityLux)),
			kv("Nutrients", strings.Join(c.Nutrients, ", ")),
			kv("Spacing", fmt.Sprintf("%.1f cm", c.SpacingCM)),
			kv("Harvest", fmt.Sprintf("%d days", c.HarvestTimeDays)),
		} {
			b.WriteString("     " + line + "\n")
		}
	}

	if len(p.Setup) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSectionTitle.Render("Setup instructions"))
		b.WriteString("\n")
		for _, s := range p.Setup {
			fmt.Fprintf(&b, "\n  %s\n", StyleCrop.Render(s.Title))
			for _, step := range s.Steps {
				b.WriteString("    • " + StyleText.Render(step) + "\n")
			}
		}
	}
	return b.String()
}
