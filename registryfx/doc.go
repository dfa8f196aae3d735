// Package registryfx exposes hjarta-ns registries to the Fx dependency injection container.
//
// NewModule provides a *ns.Registry under a DI name tag, Bind registers values in it
// when the application is built, Expose turns a registered value into an Fx
// dependency, and Claim installs the registry as ns.Default for the lifetime of the app.
package registryfx
