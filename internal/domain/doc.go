// Package domain contains the core domain model for the workspace build tool.
//
// The domain is process- and filesystem-agnostic: it does not depend on YAML parsing,
// os/exec, or logging. Infra/adapters map into/from these types.
package domain
