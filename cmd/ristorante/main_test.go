package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListingURLs(t *testing.T) {
	got := listingURLs("https://guide.michelin.com/en/it/restaurants", 3)
	expected := []string{
		"https://guide.michelin.com/en/it/restaurants",
		"https://guide.michelin.com/en/it/restaurants/page/2",
		"https://guide.michelin.com/en/it/restaurants/page/3",
	}
	if diff := cmp.Diff(got, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(listingURLs("https://example.com/list", 0), []string{"https://example.com/list"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}
