package conductor

import (
	"context"
	"net/url"
	"time"
)

// SearchProjects searches OER projects visible to the caller.
func (c *Client) SearchProjects(ctx context.Context, p ProjectSearchParams) (res Results[Project], err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_projects", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", p.Query)
	setNonEmpty(v, "status", p.Status)
	setNonEmpty(v, "classification", p.Classification)
	setNonEmpty(v, "scope", p.Scope)
	setNonEmpty(v, "sort", p.Sort)
	setPositive(v, "page", p.Page)
	setPositive(v, "limit", p.Limit)

	return getResults[Project](ctx, c, "/api/v1/search/projects", v)
}

// SearchBooks searches the commons book catalog.
func (c *Client) SearchBooks(ctx context.Context, p BookSearchParams) (res Results[Book], err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_books", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", p.Query)
	setNonEmpty(v, "library", p.Library)
	setNonEmpty(v, "subject", p.Subject)
	setNonEmpty(v, "location", p.Location)
	setNonEmpty(v, "license", p.License)
	setNonEmpty(v, "author", p.Author)
	setNonEmpty(v, "course", p.Course)
	setNonEmpty(v, "publisher", p.Publisher)
	setNonEmpty(v, "affiliation", p.Affiliation)
	setNonEmpty(v, "sort", p.Sort)
	setPositive(v, "page", p.Page)
	setPositive(v, "limit", p.Limit)

	return getResults[Book](ctx, c, "/api/v1/search/books", v)
}

// SearchHomework searches external homework and assessment listings.
func (c *Client) SearchHomework(ctx context.Context, p HomeworkSearchParams) (res Results[Homework], err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_homework", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", p.Query)
	setNonEmpty(v, "sort", p.Sort)
	setPositive(v, "page", p.Page)
	setPositive(v, "limit", p.Limit)

	return getResults[Homework](ctx, c, "/api/v1/search/homework", v)
}

// SearchUsers searches platform accounts.
func (c *Client) SearchUsers(ctx context.Context, p UserSearchParams) (res Results[User], err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_users", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", p.Query)
	setNonEmpty(v, "sort", p.Sort)
	setPositive(v, "page", p.Page)
	setPositive(v, "limit", p.Limit)

	return getResults[User](ctx, c, "/api/v1/search/users", v)
}

// SearchAssets searches public project files across the merged relevance
// pipelines (direct, tag, author).
func (c *Client) SearchAssets(ctx context.Context, p AssetSearchParams) (res Results[Asset], err error) {
	start := time.Now()
	defer func() { c.obs.observe("search_assets", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", p.Query)
	setNonEmpty(v, "fileType", p.FileType)
	setNonEmpty(v, "license", p.License)
	setNonEmpty(v, "licenseVersion", p.LicenseVersion)
	setNonEmpty(v, "org", p.Org)
	if p.Strict {
		v.Set("strict", "true")
	}
	setPositive(v, "page", p.Page)
	setPositive(v, "limit", p.Limit)

	return getResults[Asset](ctx, c, "/api/v1/search/assets", v)
}

// Autocomplete suggests asset tag values for a partial query.
func (c *Client) Autocomplete(ctx context.Context, query string, limit int) (res []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("autocomplete", start, err) }()

	v := url.Values{}
	setNonEmpty(v, "query", query)
	setPositive(v, "limit", limit)

	page, err := getResults[string](ctx, c, "/api/v1/search/autocomplete", v)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// AssetFilterOptions fetches the distinct values for asset filter dropdowns.
func (c *Client) AssetFilterOptions(ctx context.Context) (opts AssetFilterOptions, err error) {
	start := time.Now()
	defer func() { c.obs.observe("asset_filter_options", start, err) }()

	err = c.get(ctx, "/api/v1/search/asset-filter-options", nil, &opts)
	return opts, err
}

// Health fetches the service health report. A degraded service yields an
// *APIError with status 503.
func (c *Client) Health(ctx context.Context) (report HealthReport, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	err = c.get(ctx, "/health", nil, &report)
	return report, err
}
