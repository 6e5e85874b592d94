/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the adorable build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Build information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = unknown
	GitTag    = unknown
	BuildTime = unknown
	GitDirty  = ""
)

// Get returns the version string. Precedence: ldflags Version, the module
// version recorded by go install, then the git tag and short commit.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if v := moduleVersion(); v != "" {
		return v
	}
	if GitTag == unknown || GitCommit == unknown {
		return "dev"
	}
	v := GitTag
	if short := shortCommit(); short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return ""
	}
	return info.Main.Version
}

func shortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// Full returns the version with the commit it was built from, when known.
func Full() string {
	if GitCommit == unknown {
		return Get()
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
}

// Info returns build information keyed for JSON output.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
	}
}
