package intent

import (
	"regexp"
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

// PlatformFinder resolves free text to platforms, best match first.
type PlatformFinder interface {
	Search(text string) []domain.Platform
}

// rule is one classifier step. apply reports false when the rule does not
// match, in which case the next rule is tried.
type rule struct {
	name  string
	apply func(p *Parser, cmd string) (domain.ParsedIntent, bool)
}

var (
	searchRe   = regexp.MustCompile(`(?is)^(?:search|find|look for)\s+(.*)$`)
	launchRe   = regexp.MustCompile(`(?is)^(?:switch to|open|launch|go to)\s+(.*)$`)
	playRe     = regexp.MustCompile(`(?is)^(?:play|resume|watch)\s+(.*)$`)
	powerRe    = regexp.MustCompile(`(?i)power\s*(on|off)`)
	volumeRe   = regexp.MustCompile(`(?i)^(?:volume|vol)\b\s*(?:(up|down|mute|\d+(?:\.\d+)?)\b)?`)
	navTargets = map[string]bool{"home": true, "live": true, "favs": true, "favorites": true, "search": true}
)

// rules run in order and the first match wins.
var rules = []rule{
	{"search", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		rest, ok := remainder(searchRe, cmd)
		return domain.ParsedIntent{Action: domain.ActionSearch, Query: rest}, ok
	}},
	{"launch", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		rest, ok := remainder(launchRe, cmd)
		if !ok {
			return domain.ParsedIntent{}, false
		}
		target := rest
		if id, found := p.resolve(rest); found {
			target = id
		}
		return domain.ParsedIntent{Action: domain.ActionLaunch, Target: target}, true
	}},
	{"play", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		rest, ok := remainder(playRe, cmd)
		return domain.ParsedIntent{Action: domain.ActionPlay, Query: rest}, ok
	}},
	{"power", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		m := powerRe.FindStringSubmatch(cmd)
		if m == nil {
			return domain.ParsedIntent{}, false
		}
		target := "off"
		if strings.EqualFold(m[1], "on") {
			target = "on"
		}
		return domain.ParsedIntent{Action: domain.ActionPower, Target: target}, true
	}},
	{"navigate", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		lower := strings.ToLower(cmd)
		if !navTargets[lower] {
			return domain.ParsedIntent{}, false
		}
		return domain.ParsedIntent{Action: domain.ActionNavigate, Target: lower}, true
	}},
	{"volume", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		m := volumeRe.FindStringSubmatch(cmd)
		if m == nil {
			return domain.ParsedIntent{}, false
		}
		target := strings.ToLower(m[1])
		if target == "" {
			target = "mute"
		}
		return domain.ParsedIntent{Action: domain.ActionVolume, Target: target}, true
	}},
	{"platform", func(p *Parser, cmd string) (domain.ParsedIntent, bool) {
		id, found := p.resolve(cmd)
		return domain.ParsedIntent{Action: domain.ActionLaunch, Target: id}, found
	}},
}

// Parser classifies free-text remote commands. It holds no mutable state and
// is safe for concurrent use.
type Parser struct {
	platforms PlatformFinder
}

func NewParser(platforms PlatformFinder) *Parser {
	return &Parser{platforms: platforms}
}

// Parse never fails: anything unrecognised is ActionUnknown.
func (p *Parser) Parse(command string) domain.ParsedIntent {
	cmd := strings.TrimSpace(command)
	for _, r := range rules {
		if intent, ok := r.apply(p, cmd); ok {
			return intent
		}
	}
	return domain.ParsedIntent{Action: domain.ActionUnknown}
}

func (p *Parser) resolve(text string) (string, bool) {
	if p.platforms == nil {
		return "", false
	}
	matches := p.platforms.Search(text)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].ID, true
}

// remainder returns the trimmed text after a matched command prefix.
func remainder(re *regexp.Regexp, cmd string) (string, bool) {
	m := re.FindStringSubmatch(cmd)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
