package main

// Build metadata, overridden at release time via
// -ldflags "-X main.version=... -X main.binaryMode=client".
var (
	version    = "1.2.0"
	binaryMode = "full"
)
