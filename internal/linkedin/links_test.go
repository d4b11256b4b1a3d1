package linkedin

import (
	"net/url"
	"testing"

	"certify/internal/model"
)

const baseURL = "http://example.test"

func parseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u.Query()
}

func TestAddToProfileURL(t *testing.T) {
	p := model.Participant{ID: "aabbccdd", Name: "Jane Doe", Date: "2026-02-13"}
	raw := AddToProfileURL(p, baseURL, "Miles+Partnership")

	q := parseQuery(t, raw)
	checks := map[string]string{
		"startTask":        "CERTIFICATION_NAME",
		"name":             model.DefaultProgram,
		"organizationName": "Miles Partnership",
		"issueYear":        "2026",
		"issueMonth":       "2",
		"certUrl":          baseURL + "/cert/aabbccdd",
		"certId":           "aabbccdd",
	}
	for key, want := range checks {
		if got := q.Get(key); got != want {
			t.Errorf("param %s = %q, want %q", key, got, want)
		}
	}
}

func TestAddToProfileURLUsesRecordProgram(t *testing.T) {
	p := model.Participant{ID: "aabbccdd", Name: "Jane", Date: "2026-02-13", Program: "Advanced Track"}
	q := parseQuery(t, AddToProfileURL(p, baseURL, "Org"))
	if got := q.Get("name"); got != "Advanced Track" {
		t.Errorf("param name = %q, want record program", got)
	}
}

func TestAddToProfileURLUnparseableDate(t *testing.T) {
	p := model.Participant{ID: "aabbccdd", Name: "Jane", Date: "soon"}
	q := parseQuery(t, AddToProfileURL(p, baseURL, "Org"))
	if q.Has("issueYear") || q.Has("issueMonth") {
		t.Errorf("issue fields set for unparseable date: %v", q)
	}
}

func TestShareURL(t *testing.T) {
	p := model.Participant{ID: "aabbccdd"}
	raw := ShareURL(p, baseURL)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if u.Host != "www.linkedin.com" || u.Path != "/sharing/share-offsite/" {
		t.Errorf("unexpected endpoint %s://%s%s", u.Scheme, u.Host, u.Path)
	}
	if got := u.Query().Get("url"); got != baseURL+"/cert/aabbccdd" {
		t.Errorf("param url = %q", got)
	}
}

func TestDisplayOrgName(t *testing.T) {
	if got := DisplayOrgName("Miles+Partnership"); got != "Miles Partnership" {
		t.Errorf("DisplayOrgName = %q", got)
	}
	if got := DisplayOrgName("Plain Name"); got != "Plain Name" {
		t.Errorf("DisplayOrgName left plain name as %q", got)
	}
}
