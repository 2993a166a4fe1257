// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/brucewavesmarket/saas-starter/cmd"

func main() {
	cmd.Execute()
}
