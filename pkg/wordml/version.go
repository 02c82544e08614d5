package wordml

// Version is the release of the wordml library and CLI.
const Version = "0.1.0"
