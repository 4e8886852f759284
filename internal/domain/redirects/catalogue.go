// Package redirects holds the legacy-host redirect catalogue for the domain
// cutover and the consistency checks run before it ships to the edge.
package redirects

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// Category groups legacy hosts that share a destination.
type Category string

const (
	Marketing Category = "marketing"
	App       Category = "app"
)

// FeatureFlag gates the redirects at the edge and tags every rule.
const FeatureFlag = "hermes_domain_redirect"

// DeclaredTotal is the number of rules the edge configuration expects.
const DeclaredTotal = 200

// Rule maps one legacy host and path to its new location.
type Rule struct {
	Analytics       map[string]string `json:"analytics"`
	Category        Category          `json:"category"`
	DestinationHost string            `json:"destinationHost"`
	DestinationPath string            `json:"destinationPath"`
	LegacyHost      string            `json:"legacyHost"`
	LegacyPath      string            `json:"legacyPath"`
	Permanent       bool              `json:"permanent"`
	Tags            []string          `json:"tags"`
}

// Destination returns the absolute redirect target.
func (r Rule) Destination() string {
	return "https://" + r.DestinationHost + r.DestinationPath
}

// PathMapping is one source path and its destination path.
type PathMapping struct {
	From string
	To   string
}

// Group expands into one rule per host and path mapping.
type Group struct {
	Category        Category
	DestinationHost string
	Hosts           []string
	Paths           []PathMapping
}

// AnalyticsParams returns the UTM parameters attached to every redirect.
func AnalyticsParams() map[string]string {
	return map[string]string{
		"utm_campaign": "hermes-domain-cutover",
		"utm_medium":   "edge-redirect",
		"utm_source":   "legacy-host",
	}
}

// Catalogue is an immutable redirect rule set with host/path lookup.
type Catalogue struct {
	rules         []Rule
	legacyHosts   map[string]bool
	lookup        map[string]int
	declaredTotal int
}

// Expand builds the rules of each group in order.
func Expand(groups ...Group) []Rule {
	var rules []Rule
	for _, g := range groups {
		for _, host := range g.Hosts {
			for _, m := range g.Paths {
				rules = append(rules, Rule{
					Analytics:       AnalyticsParams(),
					Category:        g.Category,
					DestinationHost: g.DestinationHost,
					DestinationPath: m.To,
					LegacyHost:      strings.ToLower(host),
					LegacyPath:      NormalizePath(m.From),
					Permanent:       true,
					Tags:            []string{"hermes-domain-cutover", string(g.Category), FeatureFlag},
				})
			}
		}
	}
	return rules
}

// New wraps rules. legacyHosts is the host catalogue the rules are checked
// against; declaredTotal is the rule count the deployment expects.
// On duplicate keys the first rule wins the lookup.
func New(rules []Rule, legacyHosts []string, declaredTotal int) *Catalogue {
	c := &Catalogue{
		rules:         slices.Clone(rules),
		legacyHosts:   make(map[string]bool, len(legacyHosts)),
		lookup:        make(map[string]int, len(rules)),
		declaredTotal: declaredTotal,
	}
	for _, h := range legacyHosts {
		c.legacyHosts[strings.ToLower(h)] = true
	}
	for i, r := range c.rules {
		k := key(r.LegacyHost, r.LegacyPath)
		if _, ok := c.lookup[k]; !ok {
			c.lookup[k] = i
		}
	}
	return c
}

// Rules returns a copy of the rules in declaration order.
func (c *Catalogue) Rules() []Rule {
	return slices.Clone(c.rules)
}

// LegacyHosts returns the host catalogue sorted.
func (c *Catalogue) LegacyHosts() []string {
	return slices.Sorted(maps.Keys(c.legacyHosts))
}

// Resolve finds the rule for a request to a legacy host. Paths are normalized;
// an unknown path on a known host falls back to the host's "/" rule.
func (c *Catalogue) Resolve(host, path string) (Rule, bool) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" || !c.legacyHosts[host] {
		return Rule{}, false
	}

	p := NormalizePath(path)
	if i, ok := c.lookup[key(host, p)]; ok {
		return c.rules[i], true
	}
	if p != "/" {
		if i, ok := c.lookup[key(host, "/")]; ok {
			return c.rules[i], true
		}
	}
	return Rule{}, false
}

// NormalizePath trims whitespace, ensures a leading slash and drops trailing slashes.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

func key(host, path string) string {
	return strings.ToLower(host) + "::" + NormalizePath(path)
}

// HostSummary is the per-host line of a verification summary.
type HostSummary struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Summary is the result of a successful verification.
type Summary struct {
	Total      int                    `json:"total"`
	Categories map[Category]int       `json:"categories"`
	Hosts      map[string]HostSummary `json:"hosts"`
}

// Verify checks the catalogue for consistency. Every failure wraps
// domain.ErrInvalidCatalogue.
func (c *Catalogue) Verify() (Summary, error) {
	required := slices.Sorted(maps.Keys(AnalyticsParams()))
	seen := make(map[string]bool, len(c.rules))
	s := Summary{
		Total:      len(c.rules),
		Categories: make(map[Category]int),
		Hosts:      make(map[string]HostSummary),
	}

	for _, r := range c.rules {
		k := r.LegacyHost + "::" + r.LegacyPath
		if seen[k] {
			return Summary{}, fmt.Errorf("%w: duplicate redirect rule detected for %s", domain.ErrInvalidCatalogue, k)
		}
		seen[k] = true

		h, ok := s.Hosts[r.LegacyHost]
		if !ok {
			h.Category = r.Category
		}
		h.Count++
		s.Hosts[r.LegacyHost] = h
		s.Categories[r.Category]++

		for _, a := range required {
			if _, ok := r.Analytics[a]; !ok {
				return Summary{}, fmt.Errorf("%w: missing analytics key %q for %s", domain.ErrInvalidCatalogue, a, k)
			}
		}
		if !strings.HasPrefix(r.DestinationPath, "/") {
			return Summary{}, fmt.Errorf("%w: destination path for %s must start with \"/\"", domain.ErrInvalidCatalogue, k)
		}
	}

	if c.declaredTotal != len(c.rules) {
		return Summary{}, fmt.Errorf("%w: declared total (%d) does not match rule count (%d)",
			domain.ErrInvalidCatalogue, c.declaredTotal, len(c.rules))
	}
	if len(c.legacyHosts) != len(s.Hosts) {
		return Summary{}, fmt.Errorf("%w: legacy host catalogue lists %d hosts but rules reference %d",
			domain.ErrInvalidCatalogue, len(c.legacyHosts), len(s.Hosts))
	}

	hostsPerCategory := make(map[Category]int)
	for _, h := range s.Hosts {
		hostsPerCategory[h.Category]++
	}
	for _, host := range slices.Sorted(maps.Keys(s.Hosts)) {
		h := s.Hosts[host]
		total, hosts := s.Categories[h.Category], hostsPerCategory[h.Category]
		if h.Count*hosts != total {
			return Summary{}, fmt.Errorf("%w: host %s has %d redirects but category %q expects %d per host",
				domain.ErrInvalidCatalogue, host, h.Count, h.Category, total/hosts)
		}
	}

	return s, nil
}
