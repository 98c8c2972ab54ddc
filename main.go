// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package main

import (
	"fmt"
	"os"

	"github.com/powercalc/powerd/cmd/powerd"
)

const defaultVersion = "1.0.0"

var (
	Version   string = defaultVersion
	Commit    string
	BuildTime string
)

func main() {
	cmd := powerd.NewCommand(Version, Commit, BuildTime)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
