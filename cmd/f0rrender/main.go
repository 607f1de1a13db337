// Command f0rrender drives the bundled frei0r plugins in-process the way a
// host would: it inspects their metadata and renders single frames to PNG.
package main

import "os"

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
