package drawio

// Version is the release version of the drawio-extractor module, surfaced by
// the CLI's version subcommand.
const Version = "0.3.0"
