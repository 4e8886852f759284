package redirects

var marketingHosts = []string{
	"lobe.chat",
	"www.lobe.chat",
	"legacy.lobe.chat",
	"hermes.lobe.chat",
}

var appHosts = []string{
	"app.lobe.chat",
	"beta.lobe.chat",
	"chat.lobe.chat",
	"console.lobe.chat",
}

var marketingPaths = same(
	"/",
	"/pricing",
	"/pricing/enterprise",
	"/pricing/startups",
	"/enterprise",
	"/solutions",
	"/solutions/compliance",
	"/solutions/support",
	"/solutions/automation",
	"/solutions/multilingual",
	"/blog",
	"/blog/hermes-chat-launch",
	"/blog/security",
	"/resources",
	"/resources/webinars",
	"/resources/whitepapers",
	"/docs",
	"/docs/changelog",
	"/docs/security",
	"/docs/privacy",
	"/docs/faq",
	"/support",
	"/support/contact",
	"/status",
	"/legal/terms",
)

var appPaths = same(
	"/",
	"/chat",
	"/chat/new",
	"/chat/history",
	"/discover",
	"/discover/agents",
	"/discover/prompts",
	"/discover/workflows",
	"/market",
	"/market/plugins",
	"/market/models",
	"/market/knowledge",
	"/settings",
	"/settings/profile",
	"/settings/security",
	"/settings/appearance",
	"/settings/preferences",
	"/settings/notifications",
	"/settings/billing",
	"/settings/connections",
	"/settings/workspace",
	"/files",
	"/files/uploads",
	"/files/shared",
	"/image",
)

// Default returns the Hermes domain cutover catalogue.
func Default() *Catalogue {
	rules := Expand(
		Group{Category: Marketing, DestinationHost: "hermes.chat", Hosts: marketingHosts, Paths: marketingPaths},
		Group{Category: App, DestinationHost: "app.hermes.chat", Hosts: appHosts, Paths: appPaths},
	)
	return New(rules, append(append([]string{}, marketingHosts...), appHosts...), DeclaredTotal)
}

func same(paths ...string) []PathMapping {
	out := make([]PathMapping, len(paths))
	for i, p := range paths {
		out[i] = PathMapping{From: p, To: p}
	}
	return out
}
