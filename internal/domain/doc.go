// Package domain contains the core model of the vivid console: the architectural
// units of a Vivid project (devices, domains, features, jobs, operations, ...),
// the naming rules that turn user input into canonical class names and the
// error taxonomy shared by every layer.
//
// The domain does not touch the filesystem, composer.json or YAML. Infra adapters
// map into/from these types.
package domain
