// Package packagist provides an HTTP client for the Packagist metadata API.
//
// # Overview
//
// This package fetches Composer package metadata from Packagist
// (https://packagist.org) or any registry speaking the same protocol.
// Three resources are exposed per package:
//
//   - the stable release channel: /p2/<vendor>/<package>.json
//   - the dev release channel:    /p2/<vendor>/<package>~dev.json
//   - the full package document:  /packages/<vendor>/<package>.json
//
// The p2 channels carry version history in Composer's minified form; the
// client validates the payload shape and returns the raw delta-record
// sequence for expansion with the composer package. Record contents stay
// opaque here.
//
// # Usage
//
//	client := packagist.NewClient(cache.NewNullCache(), "", time.Hour)
//
//	deltas, err := client.Metadata(ctx, "monolog/monolog", packagist.ChannelStable, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	versions := composer.ExpandMinified(deltas)
//
// # Caching
//
// Responses are cached to reduce load on the registry. The cache TTL is set
// when creating the client. Pass refresh=true to bypass the cache.
//
// Package names are case-insensitive and normalized to lowercase before any
// request or cache lookup.
package packagist
