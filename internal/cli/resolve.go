// internal/cli/resolve.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/arc-language/pyconfig/pkg/pyver"
	"github.com/arc-language/pyconfig/pkg/resolve"
)

var (
	pythonVersion    string
	interpreterPath  string
	linkDefault      bool
	unresolvedStatic bool
	extensionModule  bool
	limitedAPI       bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the host Python build configuration",
	Long: `Locate a Python interpreter matching the requested version, extract its
compile-time configuration, and print link and conditional-compilation
directives on stdout.

The request is assembled from the config file, then PYCONFIG_* environment
toggles, then command-line flags, most specific last.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&pythonVersion, "python", "", `requested python version, e.g. "3" or "3.9"`)
	resolveCmd.Flags().StringVar(&interpreterPath, "interpreter", "", "explicit interpreter path (no search, version must match)")
	resolveCmd.Flags().BoolVar(&linkDefault, "link-mode-default", false, "link according to the interpreter's shared-library configuration")
	resolveCmd.Flags().BoolVar(&unresolvedStatic, "link-mode-unresolved-static", false, "static link with symbols resolved by the downstream consumer")
	resolveCmd.Flags().BoolVar(&extensionModule, "extension-module", false, "building an embeddable extension module")
	resolveCmd.Flags().BoolVar(&limitedAPI, "limited-api", false, "emit the limited/stable API flag")
}

func runResolve(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(config, os.Environ())
	if err != nil {
		return err
	}

	r := resolve.New(&resolve.Config{Debug: config.Debug})
	out, err := r.Resolve(context.Background(), *req)
	if err != nil {
		return fmt.Errorf("resolving python configuration: %w", err)
	}

	return out.Emit(os.Stdout)
}

// buildRequest layers config file, environment, and flags into one
// resolution request.
func buildRequest(cfg *core.Config, environ []string) (*resolve.Request, error) {
	req := &resolve.Request{}

	if cfg.Python != "" {
		spec, err := pyver.ParseSpec(cfg.Python)
		if err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		req.Version = spec
	}
	req.Interpreter = cfg.Interpreter
	switch cfg.LinkMode {
	case core.LinkModeDefault:
		req.LinkModeDefault = true
	case core.LinkModeUnresolvedStatic:
		req.LinkModeUnresolvedStatic = true
	}
	req.ExtensionModule = cfg.ExtensionModule
	req.LimitedAPI = cfg.LimitedAPI

	if err := resolve.ApplyEnviron(req, environ); err != nil {
		return nil, err
	}

	if pythonVersion != "" {
		spec, err := pyver.ParseSpec(pythonVersion)
		if err != nil {
			return nil, err
		}
		req.Version = spec
	}
	if interpreterPath != "" {
		req.Interpreter = interpreterPath
	}
	if linkDefault {
		req.LinkModeDefault = true
	}
	if unresolvedStatic {
		req.LinkModeUnresolvedStatic = true
	}
	if extensionModule {
		req.ExtensionModule = true
	}
	if limitedAPI {
		req.LimitedAPI = true
	}

	return req, nil
}
