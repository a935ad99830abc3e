package github

// Owner is the account a repository belongs to.
type Owner struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
	Type  string `json:"type"`
}

// License is a repository's declared license, absent for unlicensed repos.
type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// Repository is one repository's metadata as returned by the GitHub REST API.
// Nullable fields use pointers so absent values survive into the export layer.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Private         bool     `json:"private"`
	Owner           Owner    `json:"owner"`
	Description     *string  `json:"description"`
	Fork            bool     `json:"fork"`
	HTMLURL         string   `json:"html_url"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	StargazersCount int      `json:"stargazers_count"`
	WatchersCount   int      `json:"watchers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Language        *string  `json:"language"`
	HasIssues       bool     `json:"has_issues"`
	HasProjects     bool     `json:"has_projects"`
	HasWiki         bool     `json:"has_wiki"`
	Archived        bool     `json:"archived"`
	Visibility      string   `json:"visibility"`
	DefaultBranch   string   `json:"default_branch"`
	License         *License `json:"license"`
}

// LanguageOrEmpty returns the primary language, or "" when GitHub reports null.
func (r *Repository) LanguageOrEmpty() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// LicenseKeyOrEmpty returns the license key, or "" for unlicensed repos.
func (r *Repository) LicenseKeyOrEmpty() string {
	if r.License == nil {
		return ""
	}
	return r.License.Key
}
