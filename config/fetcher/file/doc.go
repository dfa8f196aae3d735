// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once, at construction time, and cached; every Fetch returns a
// copy of the same bytes. With WithEnvExpansion, environment references in the
// file are substituted before caching, which lets registry settings pick up
// deployment-specific values:
//
//	fetcher, err := file.NewFetcher("/etc/app/registry.yaml", file.WithEnvExpansion())()
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
