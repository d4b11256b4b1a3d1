package handler

import "strings"

// PageData is the full set of values the certificate page template can
// reference. Substitution is driven from this struct so the token set is
// fixed at compile time rather than scattered over ad-hoc replace calls.
type PageData struct {
	Name            string
	Date            string
	Program         string
	CertURL         string
	ImageURL        string
	CertID          string
	AddToProfileURL string
	ShareURL        string
	OrgName         string
}

// RenderPage substitutes every occurrence of each {{token}} in tmpl with the
// corresponding PageData value.
func RenderPage(tmpl string, d PageData) string {
	return strings.NewReplacer(
		"{{name}}", d.Name,
		"{{date}}", d.Date,
		"{{program}}", d.Program,
		"{{certUrl}}", d.CertURL,
		"{{imageUrl}}", d.ImageURL,
		"{{certId}}", d.CertID,
		"{{addToProfileUrl}}", d.AddToProfileURL,
		"{{shareUrl}}", d.ShareURL,
		"{{orgName}}", d.OrgName,
	).Replace(tmpl)
}
