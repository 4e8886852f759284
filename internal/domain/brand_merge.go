package domain

// BrandOverrides is one partial layer over BrandMetadata. A nil field means
// the layer does not specify it; nested objects merge field by field.
type BrandOverrides struct {
	Name         *string                `json:"name,omitempty"`
	ShortName    *string                `json:"shortName,omitempty"`
	Domain       *string                `json:"domain,omitempty"`
	CDNDomain    *string                `json:"cdnDomain,omitempty"`
	SupportEmail *string                `json:"supportEmail,omitempty"`
	SupportURL   *string                `json:"supportUrl,omitempty"`
	Contact      *ContactOverrides      `json:"contact,omitempty"`
	Assets       *AssetOverrides        `json:"assets,omitempty"`
	Organization *OrganizationOverrides `json:"organization,omitempty"`
	Repository   *RepositoryOverrides   `json:"repository,omitempty"`
	Tokens       *TokenOverrides        `json:"tokens,omitempty"`
}

type ContactOverrides struct {
	Email    *string `json:"email,omitempty"`
	Discord  *string `json:"discord,omitempty"`
	Telegram *string `json:"telegram,omitempty"`
	Website  *string `json:"website,omitempty"`
}

type AssetOverrides struct {
	Logo     *string `json:"logo,omitempty"`
	Favicon  *string `json:"favicon,omitempty"`
	Wordmark *string `json:"wordmark,omitempty"`
	Banner   *string `json:"banner,omitempty"`
}

type OrganizationOverrides struct {
	Name   *string `json:"name,omitempty"`
	Domain *string `json:"domain,omitempty"`
}

type RepositoryOverrides struct {
	Host  *string `json:"host,omitempty"`
	Owner *string `json:"owner,omitempty"`
	Name  *string `json:"name,omitempty"`
}

type TokenOverrides struct {
	ThemePrefix *string `json:"themePrefix,omitempty"`
}

// IsEmpty reports whether the layer specifies nothing.
func (o BrandOverrides) IsEmpty() bool {
	return o == BrandOverrides{}
}

// ResolveBrand applies each override layer over defaults in order and
// validates the result. Later layers win per field. The default theme prefix
// belongs to the default short name: when the layers rename the brand and
// none sets tokens.themePrefix, the prefix is derived from the new short name.
func ResolveBrand(defaults BrandMetadata, layers ...*BrandOverrides) (BrandMetadata, error) {
	brand := MergeBrand(defaults, nil)
	prefixSet := false
	for _, layer := range layers {
		brand = MergeBrand(brand, layer)
		if layer != nil && layer.Tokens != nil && layer.Tokens.ThemePrefix != nil {
			prefixSet = true
		}
	}
	if !prefixSet && brand.shortOrName() != defaults.shortOrName() {
		brand.Tokens.ThemePrefix = ""
	}
	if err := brand.Validate(); err != nil {
		return BrandMetadata{}, err
	}
	return brand, nil
}

// MergeBrand overlays o on base. The result shares no pointers with either input.
func MergeBrand(base BrandMetadata, o *BrandOverrides) BrandMetadata {
	if o == nil {
		o = &BrandOverrides{}
	}

	result := base
	result.Name = pick(o.Name, base.Name)
	result.ShortName = pick(o.ShortName, base.ShortName)
	result.Domain = pick(o.Domain, base.Domain)
	result.CDNDomain = pick(o.CDNDomain, base.CDNDomain)
	result.SupportURL = pick(o.SupportURL, base.SupportURL)

	// supportEmail and contact.email back each other up within one layer.
	var contactEmail *string
	if o.Contact != nil {
		contactEmail = o.Contact.Email
	}
	result.SupportEmail = pick(o.SupportEmail, pick(contactEmail, base.SupportEmail))
	result.Contact = mergeContact(base.Contact, o.Contact, o.SupportEmail)

	result.Assets = mergeAssets(base.Assets, o.Assets)
	result.Organization = mergeOrganization(base, o.Organization)
	result.Repository = mergeRepository(base, result.Organization, o.Repository)
	result.Tokens = mergeTokens(base.Tokens, o.Tokens)
	return result
}

func mergeContact(base Contact, o *ContactOverrides, supportEmail *string) Contact {
	if o == nil {
		o = &ContactOverrides{}
	}
	return Contact{
		Email:    pick(o.Email, pick(supportEmail, base.Email)),
		Discord:  pick(o.Discord, base.Discord),
		Telegram: pick(o.Telegram, base.Telegram),
		Website:  pick(o.Website, base.Website),
	}
}

func mergeAssets(base Assets, o *AssetOverrides) Assets {
	if o == nil {
		return base
	}
	return Assets{
		Logo:     pick(o.Logo, base.Logo),
		Favicon:  pick(o.Favicon, base.Favicon),
		Wordmark: pick(o.Wordmark, base.Wordmark),
		Banner:   pick(o.Banner, base.Banner),
	}
}

func mergeOrganization(base BrandMetadata, o *OrganizationOverrides) *Organization {
	if o == nil && base.Organization == nil {
		return nil
	}
	if o == nil {
		o = &OrganizationOverrides{}
	}

	var existing Organization
	if base.Organization != nil {
		existing = *base.Organization
	}
	name := existing.Name
	if name == "" {
		name = base.Name
	}
	return &Organization{
		Name:   pick(o.Name, name),
		Domain: pick(o.Domain, existing.Domain),
	}
}

func mergeRepository(base BrandMetadata, org *Organization, o *RepositoryOverrides) *Repository {
	if o == nil && base.Repository == nil {
		return nil
	}
	if o == nil {
		o = &RepositoryOverrides{}
	}

	var existing Repository
	if base.Repository != nil {
		existing = *base.Repository
	}

	orgName := base.Name
	if org != nil && org.Name != "" {
		orgName = org.Name
	}

	return &Repository{
		Host:  pick(o.Host, fallback(existing.Host, defaultRepositoryHost)),
		Owner: pick(o.Owner, fallback(existing.Owner, Slugify(orgName))),
		Name:  pick(o.Name, fallback(existing.Name, Slugify(base.Name))),
	}
}

func mergeTokens(base Tokens, o *TokenOverrides) Tokens {
	if o == nil {
		return base
	}
	return Tokens{ThemePrefix: pick(o.ThemePrefix, base.ThemePrefix)}
}

func pick(override *string, base string) string {
	if override != nil {
		return *override
	}
	return base
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
