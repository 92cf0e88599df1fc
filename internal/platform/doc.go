package platform

// Package platform contains OS/platform integration and external tooling glue:
// playlist URL validation, filesystem helpers, native playlist listing and
// OS folder reveal.
