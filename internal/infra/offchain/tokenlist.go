package offchain

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
)

// contentEntry is one item of a repository contents listing. The social
// fields are only present on index mirrors that publish them.
type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
	CreatedOn   string `json:"createdOn"`
	Twitter     string `json:"twitter"`
	Telegram    string `json:"telegram"`
	Website     string `json:"website"`
}

// tokenList implements metaresolver.TokenIndex over a repository contents
// API where every indexed mint owns a directory.
type tokenList struct {
	httpClient *retryablehttp.Client
	baseURL    string
}

var _ metaresolver.TokenIndex = (*tokenList)(nil)

// NewTokenList reads mint directories under baseURL.
func NewTokenList(httpClient *retryablehttp.Client, baseURL string) *tokenList {
	return &tokenList{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// LookupByMint returns the first entry of the mint directory, its download
// URL being the token logo.
func (l *tokenList) LookupByMint(ctx context.Context, mint string) (metaresolver.IndexEntry, error) {
	var entries []contentEntry
	status, err := getJSON(ctx, l.httpClient, l.baseURL+"/"+url.PathEscape(mint), &entries)
	if err != nil {
		if status == http.StatusNotFound {
			return metaresolver.IndexEntry{}, errors.Join(metaresolver.ErrTokenNotIndexed, err)
		}

		return metaresolver.IndexEntry{}, err
	}

	if len(entries) == 0 {
		return metaresolver.IndexEntry{}, metaresolver.ErrTokenNotIndexed
	}

	first := entries[0]
	return metaresolver.IndexEntry{
		Logo:      first.DownloadURL,
		CreatedOn: first.CreatedOn,
		Twitter:   first.Twitter,
		Telegram:  first.Telegram,
		Website:   first.Website,
	}, nil
}
