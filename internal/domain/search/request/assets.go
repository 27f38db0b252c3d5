package request

// AssetsParams are the raw inputs to NewAssets.
type AssetsParams struct {
	Query          string
	FileType       string // mime type, may end in wildcard "/*"
	License        string
	LicenseVersion string
	Org            string // substring match on the parent project's associated orgs
	StrictMode     bool
	Page           int
	Limit          int
}

// Assets is a validated asset search request. Asset results are ordered by
// pipeline precedence rather than a caller-chosen sort key.
type Assets struct {
	query          string
	fileType       string
	license        string
	licenseVersion string
	org            string
	strictMode     bool
	pagination     Pagination
}

// NewAssets validates and normalizes asset search parameters.
func NewAssets(p AssetsParams) (Assets, error) {
	if err := validateQuery(p.Query); err != nil {
		return Assets{}, err
	}

	return Assets{
		query:          p.Query,
		fileType:       normalizeFilter(p.FileType),
		license:        normalizeFilter(p.License),
		licenseVersion: normalizeFilter(p.LicenseVersion),
		org:            p.Org,
		strictMode:     p.StrictMode,
		pagination:     NewPagination(p.Page, p.Limit),
	}, nil
}

// Query returns the free-text query ("" means filter-only browsing).
func (r *Assets) Query() string { return r.query }

// FileType returns the mime-type filter ("" means inactive).
func (r *Assets) FileType() string { return r.fileType }

// License returns the license-name filter.
func (r *Assets) License() string { return r.license }

// LicenseVersion returns the license-version filter.
func (r *Assets) LicenseVersion() string { return r.licenseVersion }

// Org returns the organization substring post-filter.
func (r *Assets) Org() string { return r.org }

// StrictMode reports whether filters are hard requirements.
func (r *Assets) StrictMode() bool { return r.strictMode }

// Pagination returns the normalized page/limit pair.
func (r *Assets) Pagination() Pagination { return r.pagination }
