package goquery

// NewGenericExtractor creates an extractor for pages without
// site-specific markup. It leans on microdata and the class names
// personal and team pages commonly use.
func NewGenericExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "generic",
		selectors: fieldSelectors{
			name:     []string{`[itemprop="name"]`, ".vcard .fn", ".profile-name", ".author-name", "h1.name"},
			title:    []string{`[itemprop="jobTitle"]`, ".job-title", ".role", ".position"},
			company:  []string{`[itemprop="worksFor"]`, ".company", ".organization", ".org"},
			location: []string{`[itemprop="address"]`, ".location", ".locality"},
		},
	}
}

// NewLinkedInExtractor creates an extractor for LinkedIn profile pages.
// Selectors cover both the logged-out top-card layout and the legacy
// pv-top-card markup.
func NewLinkedInExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "linkedin",
		selectors: fieldSelectors{
			name:     []string{"h1.top-card-layout__title", ".pv-top-card--name", "h1"},
			title:    []string{"h2.top-card-layout__headline", ".top-card-layout__headline", ".pv-top-card--headline"},
			company:  []string{".top-card-layout__first-subline .top-card-link__description", ".top-card__position-info", ".pv-top-card--experience-list-item"},
			location: []string{".top-card-layout__first-subline .top-card__subline-item", ".top-card__subline-item", ".pv-top-card--list-bullet li"},
		},
	}
}

// NewXingExtractor creates an extractor for XING profile pages.
func NewXingExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "xing",
		selectors: fieldSelectors{
			name:     []string{`[data-qa="profile-name"]`, "h1.userName", "h1"},
			title:    []string{`[data-qa="profile-occupation"]`, ".userTitle"},
			company:  []string{`[data-qa="profile-company"]`, ".companyName"},
			location: []string{`[data-qa="profile-location"]`, ".userLocation"},
		},
	}
}

// NewViadeoExtractor creates an extractor for Viadeo profile pages.
func NewViadeoExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "viadeo",
		selectors: fieldSelectors{
			name:     []string{".member-name", "h1.userName", "h1"},
			title:    []string{".member-headline", ".userPosition"},
			company:  []string{".member-company", ".userCompany"},
			location: []string{".member-location", ".userLocation"},
		},
	}
}

// NewAboutMeExtractor creates an extractor for about.me pages.
func NewAboutMeExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "about_me",
		selectors: fieldSelectors{
			name:     []string{".profile-header h1", ".name", "h1"},
			title:    []string{".profile-header h2", ".headline"},
			company:  []string{".profile-header .company"},
			location: []string{".profile-header .location", ".location"},
		},
	}
}

// NewAngelListExtractor creates an extractor for AngelList/Wellfound
// profile pages.
func NewAngelListExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "angel_list",
		selectors: fieldSelectors{
			name:     []string{`[data-test="ProfileHeader-name"]`, "h1.profile-name", "h1"},
			title:    []string{`[data-test="ProfileHeader-title"]`, ".profile-headline"},
			company:  []string{`[data-test="ProfileHeader-company"]`, ".startup-link"},
			location: []string{`[data-test="ProfileHeader-location"]`, ".profile-location"},
		},
	}
}

// NewCrunchbaseExtractor creates an extractor for Crunchbase person
// pages.
func NewCrunchbaseExtractor() *ProfileExtractor {
	return &ProfileExtractor{
		name: "crunchbase",
		selectors: fieldSelectors{
			name:     []string{"h1.profile-name", `[class*="profile-header"] h1`, "h1"},
			title:    []string{".description .title", ".profile-title"},
			company:  []string{".description .org", ".profile-organization"},
			location: []string{".description .location", ".profile-location"},
		},
	}
}
