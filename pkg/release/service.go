// Package release combines registry transport, metadata expansion, and
// release resolution into one request-scoped query surface.
//
// A [Service] answers the two questions the rest of the application asks
// about a package: "which record is the latest release" and "which record
// matches this exact version". Expanded version lists are built fresh per
// query and discarded; the service holds no mutable state between calls and
// is safe for concurrent use.
package release

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/packista/packista/pkg/composer"
	"github.com/packista/packista/pkg/integrations/packagist"
)

// Options controls a single query.
type Options struct {
	// IncludePrereleases also considers dev/alpha/beta/RC versions when
	// resolving latest, and pulls the dev channel in addition to stable.
	IncludePrereleases bool

	// Refresh bypasses the response cache.
	Refresh bool
}

// Service resolves releases for Composer packages from a Packagist-style
// registry.
type Service struct {
	client   *packagist.Client
	resolver *composer.Resolver
	logger   *log.Logger
}

// NewService creates a Service on top of the given registry client.
// A nil oracle selects the default Composer ordering; a nil logger disables
// debug logging.
func NewService(client *packagist.Client, oracle composer.Oracle, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		client:   client,
		resolver: composer.NewResolver(oracle),
		logger:   logger,
	}
}

// Latest returns the record for the package's latest release.
//
// Without prereleases only the stable channel is consulted and the latest
// stable version wins; a package with no stable release still resolves to
// its latest prerelease rather than failing. With prereleases the dev
// channel is merged in and the overall latest wins.
func (s *Service) Latest(ctx context.Context, pkg string, opts Options) (composer.VersionRecord, error) {
	versions, err := s.versions(ctx, pkg, opts.IncludePrereleases, opts.Refresh)
	if err != nil {
		return nil, err
	}
	rec, err := s.resolver.FindLatestRelease(versions, opts.IncludePrereleases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pkg, err)
	}
	if v, ok := rec.Version(); ok {
		s.logger.Debug("resolved latest release", "package", pkg, "version", v, "prereleases", opts.IncludePrereleases)
	}
	return rec, nil
}

// Version returns the record matching the exact version string. The stable
// channel is consulted first; the dev channel is only fetched when the
// version is absent from stable, so lookups for tagged releases stay cheap.
func (s *Service) Version(ctx context.Context, pkg, version string, opts Options) (composer.VersionRecord, error) {
	stable, err := s.channel(ctx, pkg, packagist.ChannelStable, opts.Refresh)
	if err != nil {
		return nil, err
	}
	rec, err := s.resolver.FindSpecifiedVersion(stable, version)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, composer.ErrInvalidVersion) {
		return nil, err
	}

	dev, err := s.channel(ctx, pkg, packagist.ChannelDev, opts.Refresh)
	if err != nil {
		return nil, err
	}
	rec, err = s.resolver.FindSpecifiedVersion(dev, version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pkg, err)
	}
	return rec, nil
}

// Versions returns the full expanded version list for the package: stable
// channel first, then dev, each in registry emission order.
func (s *Service) Versions(ctx context.Context, pkg string, opts Options) (composer.VersionList, error) {
	return s.versions(ctx, pkg, true, opts.Refresh)
}

// Info returns the repository-level package document.
func (s *Service) Info(ctx context.Context, pkg string, opts Options) (*packagist.PackageInfo, error) {
	return s.client.Package(ctx, pkg, opts.Refresh)
}

// versions fetches and expands the requested channels. Each channel is
// expanded separately: delta chains never cross a channel boundary.
func (s *Service) versions(ctx context.Context, pkg string, includeDev, refresh bool) (composer.VersionList, error) {
	out, err := s.channel(ctx, pkg, packagist.ChannelStable, refresh)
	if err != nil {
		return nil, err
	}
	if includeDev {
		dev, err := s.channel(ctx, pkg, packagist.ChannelDev, refresh)
		if err != nil {
			return nil, err
		}
		out = append(out, dev...)
	}
	return out, nil
}

func (s *Service) channel(ctx context.Context, pkg string, ch packagist.Channel, refresh bool) (composer.VersionList, error) {
	deltas, err := s.client.Metadata(ctx, pkg, ch, refresh)
	if err != nil {
		return nil, err
	}
	versions := composer.ExpandMinified(deltas)
	s.logger.Debug("expanded channel metadata", "package", pkg, "channel", ch, "versions", len(versions))
	return versions, nil
}
