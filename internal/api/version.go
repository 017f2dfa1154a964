// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api

// Version and Commit are set at build time via -ldflags.
var (
	Version = "v0.1.0-dev"
	Commit  = "unknown"
)
