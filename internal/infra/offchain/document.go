package offchain

import (
	"context"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
)

const ipfsScheme = "ipfs://"

// documentFetcher implements metaresolver.DocumentFetcher over HTTP with
// ipfs:// URIs served through a gateway.
type documentFetcher struct {
	httpClient *retryablehttp.Client
	gateway    string // ends with a slash
}

var _ metaresolver.DocumentFetcher = (*documentFetcher)(nil)

// NewDocumentFetcher returns a fetcher rewriting ipfs:// URIs onto gateway,
// e.g. "https://ipfs.io/ipfs/".
func NewDocumentFetcher(httpClient *retryablehttp.Client, gateway string) *documentFetcher {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}

	return &documentFetcher{
		httpClient: httpClient,
		gateway:    gateway,
	}
}

// resolve maps a metadata URI to an HTTP URL.
func (f *documentFetcher) resolve(uri string) string {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, ipfsScheme) {
		return uri
	}

	path := strings.TrimPrefix(uri, ipfsScheme)
	path = strings.TrimPrefix(path, "ipfs/")
	return f.gateway + path
}

func (f *documentFetcher) FetchDocument(ctx context.Context, uri string) (metaresolver.Document, error) {
	var doc metaresolver.Document
	if _, err := getJSON(ctx, f.httpClient, f.resolve(uri), &doc); err != nil {
		return metaresolver.Document{}, err
	}

	return doc, nil
}
