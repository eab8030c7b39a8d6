package intent

import (
	"strings"
	"testing"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/actuallystonmai/stream-aggregator/internal/platform"
	"github.com/stretchr/testify/assert"
)

// finder matches a platform when the lowercased text equals its id or label.
type finder []domain.Platform

func (f finder) Search(text string) []domain.Platform {
	text = strings.ToLower(strings.TrimSpace(text))
	var out []domain.Platform
	for _, p := range f {
		if text != "" && (text == p.ID || text == strings.ToLower(p.Label)) {
			out = append(out, p)
		}
	}
	return out
}

var testPlatforms = finder{
	{ID: "netflix", Label: "Netflix"},
	{ID: "primevideo", Label: "Prime Video"},
	{ID: "disneyplus", Label: "Disney+"},
}

func TestParse(t *testing.T) {
	p := NewParser(testPlatforms)

	tests := []struct {
		command string
		want    domain.ParsedIntent
	}{
		{"search batman", domain.ParsedIntent{Action: domain.ActionSearch, Query: "batman"}},
		{"  Find   The Bear  ", domain.ParsedIntent{Action: domain.ActionSearch, Query: "The Bear"}},
		{"look for Star Wars", domain.ParsedIntent{Action: domain.ActionSearch, Query: "Star Wars"}},
		{"switch to netflix", domain.ParsedIntent{Action: domain.ActionLaunch, Target: "netflix"}},
		{"Open Prime Video", domain.ParsedIntent{Action: domain.ActionLaunch, Target: "primevideo"}},
		{"go to Crackle", domain.ParsedIntent{Action: domain.ActionLaunch, Target: "Crackle"}},
		{"play Stranger Things", domain.ParsedIntent{Action: domain.ActionPlay, Query: "Stranger Things"}},
		{"resume", domain.ParsedIntent{Action: domain.ActionUnknown}},
		{"power on", domain.ParsedIntent{Action: domain.ActionPower, Target: "on"}},
		{"POWER OFF", domain.ParsedIntent{Action: domain.ActionPower, Target: "off"}},
		{"turn the poweroff now", domain.ParsedIntent{Action: domain.ActionPower, Target: "off"}},
		{"home", domain.ParsedIntent{Action: domain.ActionNavigate, Target: "home"}},
		{"Favorites", domain.ParsedIntent{Action: domain.ActionNavigate, Target: "favorites"}},
		{"search", domain.ParsedIntent{Action: domain.ActionNavigate, Target: "search"}},
		{"volume up", domain.ParsedIntent{Action: domain.ActionVolume, Target: "up"}},
		{"vol down", domain.ParsedIntent{Action: domain.ActionVolume, Target: "down"}},
		{"volume 35", domain.ParsedIntent{Action: domain.ActionVolume, Target: "35"}},
		{"volume 0.5", domain.ParsedIntent{Action: domain.ActionVolume, Target: "0.5"}},
		{"volume loud", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"volume", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"volume upstairs", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"vol downward", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"volume 20db", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"vol.5", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"volume Mute", domain.ParsedIntent{Action: domain.ActionVolume, Target: "mute"}},
		{"volumes up", domain.ParsedIntent{Action: domain.ActionUnknown}},
		{"Disney+", domain.ParsedIntent{Action: domain.ActionLaunch, Target: "disneyplus"}},
		{"xyzzy nonsense", domain.ParsedIntent{Action: domain.ActionUnknown}},
		{"", domain.ParsedIntent{Action: domain.ActionUnknown}},
		{"   ", domain.ParsedIntent{Action: domain.ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.command))
		})
	}
}

func TestParseRuleOrder(t *testing.T) {
	p := NewParser(testPlatforms)

	// play is checked before navigate
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionPlay, Query: "home"}, p.Parse("play home"))
	// search is checked before power
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionSearch, Query: "power on"}, p.Parse("search power on"))
	// launch is checked before the platform fallback
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionLaunch, Target: "netflix"}, p.Parse("launch Netflix"))
}

func TestParseWithoutPlatforms(t *testing.T) {
	p := NewParser(nil)
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionLaunch, Target: "Netflix"}, p.Parse("open Netflix"))
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionUnknown}, p.Parse("netflix"))
}

func TestParseWithCatalog(t *testing.T) {
	c := platform.NewCatalog([]domain.Platform{
		{ID: "netflix", Label: "Netflix"},
		{ID: "max", Label: "Max", Aliases: []string{"hbo"}},
	})
	p := NewParser(c)

	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionLaunch, Target: "max"}, p.Parse("switch to HBO"))
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionLaunch, Target: "netflix"}, p.Parse("netflix"))
	assert.Equal(t, domain.ParsedIntent{Action: domain.ActionUnknown}, p.Parse("xyzzy nonsense"))
}
