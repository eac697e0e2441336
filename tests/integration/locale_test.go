//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestLocale(t *testing.T) {
	c := newClient(t)

	resp := c.do(http.MethodGet, "/api/locale", nil)
	expectStatus(t, resp, http.StatusOK)
	loc := decodeJSON[localeResponse](t, resp)
	resp.Body.Close()
	if loc.Language != "en" {
		t.Errorf("default language: got %q, want en", loc.Language)
	}
	if len(loc.Supported) != 2 {
		t.Errorf("supported: got %v", loc.Supported)
	}

	resp = c.do(http.MethodGet, "/api/locale/translations?key=header.products", nil)
	expectStatus(t, resp, http.StatusOK)
	en := decodeJSON[translationsResponse](t, resp)
	resp.Body.Close()

	resp = c.do(http.MethodPut, "/api/locale", map[string]string{"language": "hi"})
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = c.do(http.MethodGet, "/api/locale/translations?key=header.products", nil)
	expectStatus(t, resp, http.StatusOK)
	hi := decodeJSON[translationsResponse](t, resp)
	resp.Body.Close()

	if hi.Language != "hi" {
		t.Errorf("language: got %q, want hi", hi.Language)
	}
	if hi.Translations["header.products"] == en.Translations["header.products"] {
		t.Errorf("header.products was not translated: %q", hi.Translations["header.products"])
	}
}

func TestLocale_Unsupported(t *testing.T) {
	c := newClient(t)

	resp := c.do(http.MethodPut, "/api/locale", map[string]string{"language": "fr"})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusUnprocessableEntity)
}
