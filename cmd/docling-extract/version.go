package main

// version is set at build time via ldflags.
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("docling-extract {{.Version}}\n")
}
