// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xform runs transform tool scripts and manages tool settings.
package main

func main() {
	Execute()
}
