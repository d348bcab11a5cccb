// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents the detected host platform
type Platform struct {
	OS   string // linux, darwin, windows
	Arch string // amd64, arm64, 386, arm
}

// Detect detects the current host platform
func Detect() *Platform {
	return &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// Newline returns the line terminator the platform's python uses when
// printing to stdout. Windows pythons write crlf; everything else lf.
func (p *Platform) Newline() string {
	if p.OS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}
