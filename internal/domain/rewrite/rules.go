package rewrite

import (
	"regexp"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// DefaultRules returns the brand migration rule set in application order.
//
// Structural tokens (URLs, e-mail addresses, asset paths, package scopes,
// cased identifiers) come first. The bare organization and product names come
// last so they never rewrite half of a token an earlier rule owns.
func DefaultRules() RuleSet {
	return RuleSet{
		{
			ID:          "desktop-user-agent",
			Description: "Desktop user-agent product token (LobeChat-Desktop).",
			Pattern:     regexp.MustCompile(`\bLobeChat-Desktop\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(PascalCase(shortName(b))) + "-Desktop"
			},
		},
		{
			ID:          "localized-product-sentence",
			Description: "Sentence templates that embed the product name; surrounding words and spacing are kept.",
			Pattern:     regexp.MustCompile(`(Welcome to|Powered by|欢迎使用)(\s*)Lobe[ -]?Chat\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return "${1}${2}" + literal(b.Name)
			},
		},
		{
			ID:          "theme-token-prefix",
			Description: "Theme token constants (LOBE_THEME_*).",
			Pattern:     regexp.MustCompile(`\bLOBE_THEME_`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.ThemePrefix()) + "_"
			},
		},
		{
			ID:          "raw-github-cdn",
			Description: "Raw GitHub downloads from lobehub/lobe-chat are served from the brand CDN.",
			Pattern:     regexp.MustCompile(`https?://raw\.githubusercontent\.com/lobehub/lobe-chat`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal("https://" + b.CDN() + "/" + b.RepositoryOwner() + "/" + b.RepositoryName())
			},
		},
		{
			ID:          "github-org",
			Description: "Repository URLs pointing at lobehub/lobe-chat.",
			Pattern:     regexp.MustCompile(`https?://github\.com/lobehub/lobe-chat`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal("https://" + b.RepositoryHost() + "/" + b.RepositoryOwner() + "/" + b.RepositoryName())
			},
		},
		{
			ID:          "gh-org-generic",
			Description: "Git host organization slug (github.com/lobehub).",
			Pattern:     regexp.MustCompile(`github\.com/lobehub\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.RepositoryHost() + "/" + b.RepositoryOwner())
			},
		},
		{
			ID:          "contact-domain",
			Description: "Links to the legacy help portal.",
			Pattern:     regexp.MustCompile(`https?://(?:www\.)?help\.lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.SupportURL)
			},
		},
		{
			ID:          "support-email",
			Description: "Support mailbox.",
			Pattern:     regexp.MustCompile(`support@lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.SupportEmail)
			},
		},
		{
			ID:          "hello-email",
			Description: "General inbox.",
			Pattern:     regexp.MustCompile(`hello@lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Contact.Email)
			},
		},
		{
			ID:          "cdn-domain",
			Description: "CDN host cdn.lobehub.com.",
			Pattern:     regexp.MustCompile(`cdn\.lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.CDN())
			},
		},
		{
			ID:          "www-domain",
			Description: "www-prefixed marketing host.",
			Pattern:     regexp.MustCompile(`www\.lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal("www." + b.Domain)
			},
		},
		{
			ID:          "legacy-lobechat-domain-www",
			Description: "www-prefixed lobechat.com host.",
			Pattern:     regexp.MustCompile(`www\.lobechat\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal("www." + b.Domain)
			},
		},
		{
			ID:          "primary-domain",
			Description: "Marketing domain lobehub.com and its remaining subdomains.",
			Pattern:     regexp.MustCompile(`lobehub\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Domain)
			},
		},
		{
			ID:          "legacy-lobechat-domain",
			Description: "Historical lobechat.com host in READMEs and deployment manifests.",
			Pattern:     regexp.MustCompile(`lobechat\.com`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Domain)
			},
		},
		{
			ID:          "asset-logo",
			Description: "Logo asset paths.",
			Pattern:     regexp.MustCompile(`/assets/logo/lobehub(?:-light)?\.svg`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Assets.Logo)
			},
		},
		{
			ID:          "asset-favicon",
			Description: "Favicon asset paths.",
			Pattern:     regexp.MustCompile(`/favicon/lobehub\.(?:png|ico)`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Assets.Favicon)
			},
		},
		{
			ID:          "asset-wordmark",
			Description: "Wordmark asset paths.",
			Pattern:     regexp.MustCompile(`/assets/branding/lobehub-wordmark\.svg`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Assets.Wordmark)
			},
		},
		{
			ID:          "oidc-audience",
			Description: "OIDC audience URN.",
			Pattern:     regexp.MustCompile(`urn:lobehub:chat`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal("urn:" + Compact(b.OrganizationName()) + ":chat")
			},
		},
		{
			ID:          "desktop-client-id",
			Description: "OIDC desktop client identifier.",
			Pattern:     regexp.MustCompile(`lobehub-desktop`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(Compact(b.OrganizationName()) + "-desktop")
			},
		},
		{
			ID:          "service-mode-flag",
			Description: "Cloud service mode identifiers (lobehubCloud).",
			Pattern:     regexp.MustCompile(`lobehubCloud`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(PascalCase(b.OrganizationName()) + "Cloud")
			},
		},
		{
			ID:          "organization-scope",
			Description: "Organization package scope (@lobehub/).",
			Pattern:     regexp.MustCompile(`@lobehub/`),
			Replacement: func(b domain.BrandMetadata) string {
				return "@" + SanitizeHandleSlug(b.OrganizationName()) + "/"
			},
		},
		{
			ID:          "product-scope-lobechat",
			Description: "Product package scope (@lobechat/) moves under the organization scope.",
			Pattern:     regexp.MustCompile(`@lobechat/`),
			Replacement: func(b domain.BrandMetadata) string {
				return "@" + SanitizeHandleSlug(b.OrganizationName()) + "/"
			},
		},
		{
			ID:            "organization-handle",
			Description:   "Organization social handle (@lobehub).",
			Pattern:       regexp.MustCompile(`@lobehub`),
			NotFollowedBy: []string{".com"},
			Replacement: func(b domain.BrandMetadata) string {
				return "@" + SanitizeHandleSlug(b.OrganizationName())
			},
		},
		{
			ID:            "product-handle-lobechat",
			Description:   "Product social handle (@lobechat) becomes the short-name handle.",
			Pattern:       regexp.MustCompile(`@lobechat`),
			NotFollowedBy: []string{".com", "/"},
			Replacement: func(b domain.BrandMetadata) string {
				return "@" + SanitizeHandleSlug(shortName(b))
			},
		},
		{
			ID:          "organization-name",
			Description: "Parent company name (LobeHub, Lobe Hub, Lobe-Hub).",
			Pattern:     regexp.MustCompile(`\bLobe[ -]?Hub\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.OrganizationName())
			},
		},
		{
			ID:          "product-name-kebab",
			Description: "Kebab-case service identifiers (lobe-chat).",
			Pattern:     regexp.MustCompile(`\blobe-chat\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(Kebab(shortName(b)))
			},
		},
		{
			ID:          "product-name-snake",
			Description: "Snake-case identifiers, also when embedded (lobe_chat, lobe_chat_db).",
			Pattern:     regexp.MustCompile(`(^|[^A-Za-z0-9])lobe_chat`),
			Replacement: func(b domain.BrandMetadata) string {
				return "${1}" + literal(Snake(shortName(b)))
			},
		},
		{
			ID:          "product-name-uppercase-snake",
			Description: "Environment variables and constants (LOBE_CHAT, NEXT_PUBLIC_LOBE_CHAT_URL).",
			Pattern:     regexp.MustCompile(`(^|[^A-Za-z0-9])LOBE_CHAT`),
			Replacement: func(b domain.BrandMetadata) string {
				return "${1}" + literal(UpperSnake(shortName(b)))
			},
		},
		{
			ID:          "product-name-uppercase-kebab",
			Description: "Upper kebab-case release names (LOBE-CHAT).",
			Pattern:     regexp.MustCompile(`\bLOBE-CHAT\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(UpperKebab(shortName(b)))
			},
		},
		{
			ID:          "product-name-uppercase",
			Description: "Upper-case product tokens (LOBECHAT).",
			Pattern:     regexp.MustCompile(`\bLOBECHAT\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(UpperSnake(b.Name))
			},
		},
		{
			ID:          "product-name-lowercase",
			Description: "Lower-case product handles in URLs and CLI flags (lobechat).",
			Pattern:     regexp.MustCompile(`\blobechat\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(Kebab(b.Name))
			},
		},
		{
			ID:          "organization-kebab",
			Description: "Lower-case organization identifiers (lobehub).",
			Pattern:     regexp.MustCompile(`\blobehub\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(Compact(b.OrganizationName()))
			},
		},
		{
			ID:          "product-name-titlecase",
			Description: "Product name in copy (LobeChat, Lobe Chat, Lobe-Chat).",
			Pattern:     regexp.MustCompile(`\bLobe[ -]?Chat\b`),
			Replacement: func(b domain.BrandMetadata) string {
				return literal(b.Name)
			},
		},
	}
}

func shortName(b domain.BrandMetadata) string {
	if b.ShortName != "" {
		return b.ShortName
	}
	return b.Name
}
