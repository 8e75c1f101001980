package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRedeemDownload(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	link, err := app.signer.SignURL("1", 1)
	if err != nil {
		t.Fatal(err)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}

	rr := executeRequest(httptest.NewRequest(http.MethodGet, u.Path+"?"+u.RawQuery, nil), mux)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp DownloadResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ProductID != "1" || resp.FileType != "tsx" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRedeemDownloadRejectsMissingToken(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/store/downloads/someref", nil), mux)
	checkResponseCode(t, http.StatusUnauthorized, rr.Code)
}

func TestRedeemDownloadRejectsTamperedToken(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	link, _ := app.signer.SignURL("1", 1)
	u, _ := url.Parse(link)
	tampered := strings.Replace(u.RawQuery, "token=", "token=x", 1)

	rr := executeRequest(httptest.NewRequest(http.MethodGet, u.Path+"?"+tampered, nil), mux)
	checkResponseCode(t, http.StatusUnauthorized, rr.Code)
}

func TestGetProduct(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/store/products/1", nil), mux)
	checkResponseCode(t, http.StatusOK, rr.Code)

	rr = executeRequest(httptest.NewRequest(http.MethodGet, "/v1/store/products/999", nil), mux)
	checkResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestListProducts(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(httptest.NewRequest(http.MethodGet, "/v1/store/products", nil), mux)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var list []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) == 0 {
		t.Fatal("expected at least one product")
	}
}
