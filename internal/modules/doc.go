// Package modules contains the dashboard's self-contained features.
//
// Each subdirectory implements `module.Module` and is listed in
// `internal/app/modules.go`; the server registers and boots them at startup.
package modules
