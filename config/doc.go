// Package config loads registry settings through a small pipeline of interfaces:
//   - Parser: deserializes raw data into a config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Defaulter: applies default values before validation
//   - Validator: validates config after parsing
//
// Provider runs the pipeline for any target type. Settings is the target used
// to describe a registry: delimiter, default factory arguments, factory context,
// logging, preset modules and extra options.
//
// # Example
//
//	settings, err := config.Load(yamlparser.NewParser(), fetcher, "registry")
//	if err != nil {
//	    return err
//	}
//
//	reg := config.NewRegistry(settings, os.Stderr)
//	reg.Resolve("services.mailer")
package config
