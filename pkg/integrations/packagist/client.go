package packagist

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/packista/packista/pkg/cache"
	"github.com/packista/packista/pkg/composer"
	"github.com/packista/packista/pkg/integrations"
)

// DefaultBaseURL is the canonical Packagist metadata host.
const DefaultBaseURL = "https://repo.packagist.org"

// Channel selects one of the two p2 metadata resources for a package.
type Channel string

// Metadata channels. The stable channel lists tagged releases; the dev
// channel lists branch versions (dev-master and friends).
const (
	ChannelStable Channel = "stable"
	ChannelDev    Channel = "dev"
)

// ErrInvalidName is returned for package names not in vendor/package form.
var ErrInvalidName = errors.New("invalid package name")

// packageNamePattern matches Composer vendor/package names after lowercasing.
var packageNamePattern = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)

// Client provides access to a Packagist-style registry.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Packagist client storing responses in c with the given
// TTL. An empty baseURL selects [DefaultBaseURL]; pass an explicit URL to
// target a private registry or a test server.
func NewClient(c cache.Cache, baseURL string, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(c, "packagist:", ttl, nil),
		baseURL: baseURL,
	}
}

// Metadata retrieves the minified delta-record sequence for a package from
// the given channel.
//
// The pkg parameter must be in "vendor/package" format; it is normalized to
// lowercase first, since Packagist names are case-insensitive. The returned
// records are NOT expanded; feed them to composer.ExpandMinified.
//
// Returns:
//   - [ErrInvalidName] if pkg is not a vendor/package name
//   - [integrations.ErrNotFound] if the package doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - [ErrMalformedPayload] when the response doesn't have the expected shape
func (c *Client) Metadata(ctx context.Context, pkg string, channel Channel, refresh bool) ([]composer.VersionRecord, error) {
	pkg, err := normalizeName(pkg)
	if err != nil {
		return nil, err
	}

	suffix := ""
	if channel == ChannelDev {
		suffix = "~dev"
	}
	url := fmt.Sprintf("%s/p2/%s%s.json", c.baseURL, pkg, suffix)

	var data p2Response
	err = c.Cached(ctx, fmt.Sprintf("p2:%s:%s", channel, pkg), refresh, &data, func() error {
		data = p2Response{}
		if err := c.Get(ctx, url, &data); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: packagist package %s", err, pkg)
			}
			return err
		}
		return validateMetadata(pkg, &data)
	})
	if err != nil {
		return nil, err
	}
	return data.Packages[pkg], nil
}

// Package retrieves the full package document, which carries repository-level
// metadata (description, download counts, stars) on top of the version list.
func (c *Client) Package(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg, err := normalizeName(pkg)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/packages/%s.json", c.baseURL, pkg)

	var data packageResponse
	err = c.Cached(ctx, "full:"+pkg, refresh, &data, func() error {
		data = packageResponse{}
		if err := c.Get(ctx, url, &data); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: packagist package %s", err, pkg)
			}
			return err
		}
		if data.Package.Name == "" {
			return fmt.Errorf("%w: missing package object for %s", ErrMalformedPayload, pkg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &data.Package, nil
}

func normalizeName(pkg string) (string, error) {
	pkg = integrations.NormalizePkgName(pkg)
	if !packageNamePattern.MatchString(pkg) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, pkg)
	}
	return pkg, nil
}

// p2Response is the wire shape of both p2 channels: an object keyed by
// package name whose value is the minified delta-record sequence.
type p2Response struct {
	Minified string                              `json:"minified,omitempty"`
	Packages map[string][]composer.VersionRecord `json:"packages"`
}

// PackageInfo is the repository-level subset of the full package document.
// Version records in the full document are keyed by version and not
// minified; they are kept opaque like everywhere else.
type PackageInfo struct {
	Name        string                            `json:"name"`
	Description string                            `json:"description"`
	Type        string                            `json:"type"`
	Repository  string                            `json:"repository"`
	Language    string                            `json:"language"`
	Favers      int                               `json:"favers"`
	Downloads   Downloads                         `json:"downloads"`
	Versions    map[string]composer.VersionRecord `json:"versions"`
}

// Downloads holds Packagist download counters.
type Downloads struct {
	Total   int `json:"total"`
	Monthly int `json:"monthly"`
	Daily   int `json:"daily"`
}

type packageResponse struct {
	Package PackageInfo `json:"package"`
}
