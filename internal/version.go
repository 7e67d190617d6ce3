package internal

// Version is the version reported by `projscan version`. Overridden at
// release build time via -ldflags.
var Version = "0.1.0-dev"
