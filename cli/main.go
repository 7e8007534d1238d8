// pulsedeploy is a command-line interface for building and shipping the
// PulseCheck web dashboard.
//
// It verifies the Node toolchain, scaffolds environment files, installs
// dependencies with npm ci, builds the production bundle, and either
// uploads it through the Netlify CLI or packages it for manual upload.
//
// Typical usage:
//
//	pulsedeploy setup    # Scaffold env files
//	pulsedeploy full     # Run the whole pipeline
package main

import "pulsedeploy/cli/cmd"

func main() {
	cmd.Execute()
}
