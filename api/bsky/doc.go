// Package bsky holds Lexicon types and XRPC call helpers for the app.bsky.* endpoints the bot queries.
//
// These follow the shape of lexgen output, but only include the schemas and fields that are actually read.
package bsky
