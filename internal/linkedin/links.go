// Package linkedin builds the deep links understood by LinkedIn's
// certification and sharing endpoints. The builders are pure functions of a
// participant and server configuration; they never talk to the network.
package linkedin

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"certify/internal/model"
)

const (
	addToProfileEndpoint = "https://www.linkedin.com/profile/add"
	shareEndpoint        = "https://www.linkedin.com/sharing/share-offsite/"
)

// AddToProfileURL builds the "Add to Profile" deep link for a participant's
// certificate. orgName may carry '+' in place of spaces; it is displayed and
// encoded with real spaces.
func AddToProfileURL(p model.Participant, baseURL, orgName string) string {
	certURL := baseURL + "/cert/" + p.ID

	params := url.Values{}
	params.Set("startTask", "CERTIFICATION_NAME")
	params.Set("name", p.ProgramName())
	params.Set("organizationName", DisplayOrgName(orgName))
	params.Set("certUrl", certURL)
	params.Set("certId", p.ID)

	if issued, err := time.ParseInLocation("2006-01-02", p.Date, time.Local); err == nil {
		params.Set("issueYear", strconv.Itoa(issued.Year()))
		params.Set("issueMonth", strconv.Itoa(int(issued.Month())))
	}

	return addToProfileEndpoint + "?" + params.Encode()
}

// ShareURL builds the share-to-feed link pointing at the certificate page.
func ShareURL(p model.Participant, baseURL string) string {
	params := url.Values{}
	params.Set("url", baseURL+"/cert/"+p.ID)
	return shareEndpoint + "?" + params.Encode()
}

// DisplayOrgName renders a configured organization name for display,
// replacing '+' separators with spaces.
func DisplayOrgName(orgName string) string {
	return strings.ReplaceAll(orgName, "+", " ")
}
