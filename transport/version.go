package transport

// Version is the library version, surfaced by the CLI.
const Version = "0.2.0"
