package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// BrandMetadata describes the target product every rewrite rule is parameterized by.
// It is built once per run by ResolveBrand and only read afterwards.
type BrandMetadata struct {
	Name         string        `json:"name"                   yaml:"name"`
	ShortName    string        `json:"shortName"              yaml:"shortName"`
	Domain       string        `json:"domain"                 yaml:"domain"`
	CDNDomain    string        `json:"cdnDomain,omitempty"    yaml:"cdnDomain,omitempty"`
	SupportEmail string        `json:"supportEmail"           yaml:"supportEmail"`
	SupportURL   string        `json:"supportUrl"             yaml:"supportUrl"`
	Contact      Contact       `json:"contact"                yaml:"contact"`
	Assets       Assets        `json:"assets"                 yaml:"assets"`
	Organization *Organization `json:"organization,omitempty" yaml:"organization,omitempty"`
	Repository   *Repository   `json:"repository,omitempty"   yaml:"repository,omitempty"`
	Tokens       Tokens        `json:"tokens"                 yaml:"tokens"`
}

// Contact lists the channels that appear in documentation footers.
type Contact struct {
	Email    string `json:"email"              yaml:"email"`
	Discord  string `json:"discord,omitempty"  yaml:"discord,omitempty"`
	Telegram string `json:"telegram,omitempty" yaml:"telegram,omitempty"`
	Website  string `json:"website,omitempty"  yaml:"website,omitempty"`
}

// Assets holds repository paths of brand imagery.
type Assets struct {
	Logo     string `json:"logo"             yaml:"logo"`
	Favicon  string `json:"favicon"          yaml:"favicon"`
	Wordmark string `json:"wordmark"         yaml:"wordmark"`
	Banner   string `json:"banner,omitempty" yaml:"banner,omitempty"`
}

// Organization is the operating company behind the product.
type Organization struct {
	Name   string `json:"name"             yaml:"name"`
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// Repository locates the product source on a git host.
type Repository struct {
	Host  string `json:"host"  yaml:"host"`
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name"  yaml:"name"`
}

// Tokens carries naming overrides for generated identifiers.
type Tokens struct {
	// ThemePrefix replaces the legacy LOBE_THEME prefix. Empty derives it from the short name.
	ThemePrefix string `json:"themePrefix,omitempty" yaml:"themePrefix,omitempty"`
}

const defaultRepositoryHost = "github.com"

// DefaultBrand returns the compiled-in Hermes Chat brand. Every call returns a fresh value.
func DefaultBrand() BrandMetadata {
	return BrandMetadata{
		Name:         "Hermes Chat",
		ShortName:    "Hermes Chat",
		Domain:       "hermes.chat",
		CDNDomain:    "cdn.hermes.chat",
		SupportEmail: "support@hermes.chat",
		SupportURL:   "https://hermes.chat/support",
		Contact: Contact{
			Email:   "hello@hermes.chat",
			Discord: "https://discord.gg/hermeschat",
			Website: "https://hermes.chat",
		},
		Assets: Assets{
			Logo:     "/assets/hermes-chat/logo.svg",
			Favicon:  "/assets/hermes-chat/favicon.svg",
			Wordmark: "/assets/hermes-chat/wordmark.svg",
			Banner:   "/assets/hermes-chat/banner.svg",
		},
		Organization: &Organization{Name: "Hermes Labs", Domain: "hermeslabs.com"},
		Repository:   &Repository{Host: defaultRepositoryHost, Owner: "hermes-chat", Name: "hermes-chat"},
		Tokens:       Tokens{ThemePrefix: "HERMES_THEME"},
	}
}

// Validate enforces the fields every rule depends on.
func (b BrandMetadata) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", b.Name},
		{"domain", b.Domain},
		{"supportEmail", b.SupportEmail},
		{"supportUrl", b.SupportURL},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidBrand, strings.Join(missing, ", "))
	}

	if b.Organization != nil && strings.TrimSpace(b.Organization.Name) == "" {
		return fmt.Errorf("%w: organization name is required when organization metadata is set", ErrInvalidBrand)
	}
	if b.Repository != nil {
		if strings.TrimSpace(b.Repository.Owner) == "" || strings.TrimSpace(b.Repository.Name) == "" {
			return fmt.Errorf("%w: repository owner and name are required when repository metadata is set", ErrInvalidBrand)
		}
	}
	return nil
}

// OrganizationName falls back to the product name when no organization is configured.
func (b BrandMetadata) OrganizationName() string {
	if b.Organization != nil && b.Organization.Name != "" {
		return b.Organization.Name
	}
	return b.Name
}

// CDN returns the CDN host, or the primary domain when none is set.
func (b BrandMetadata) CDN() string {
	if b.CDNDomain != "" {
		return b.CDNDomain
	}
	return b.Domain
}

// RepositoryHost defaults to github.com.
func (b BrandMetadata) RepositoryHost() string {
	if b.Repository != nil && b.Repository.Host != "" {
		return b.Repository.Host
	}
	return defaultRepositoryHost
}

// RepositoryOwner falls back to the slugged organization name.
func (b BrandMetadata) RepositoryOwner() string {
	if b.Repository != nil && b.Repository.Owner != "" {
		return b.Repository.Owner
	}
	return Slugify(b.OrganizationName())
}

// RepositoryName falls back to the slugged product name.
func (b BrandMetadata) RepositoryName() string {
	if b.Repository != nil && b.Repository.Name != "" {
		return b.Repository.Name
	}
	return Slugify(b.Name)
}

// ThemePrefix returns the configured token prefix or UPPER_SNAKE(shortName)_THEME.
func (b BrandMetadata) ThemePrefix() string {
	if b.Tokens.ThemePrefix != "" {
		return b.Tokens.ThemePrefix
	}
	return strings.ToUpper(whitespace.ReplaceAllString(strings.TrimSpace(b.shortOrName()), "_")) + "_THEME"
}

func (b BrandMetadata) shortOrName() string {
	if b.ShortName != "" {
		return b.ShortName
	}
	return b.Name
}

var whitespace = regexp.MustCompile(`\s+`)

// Slugify lower-cases s and hyphenates whitespace runs.
func Slugify(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}
