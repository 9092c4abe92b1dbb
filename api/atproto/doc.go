// Package atproto holds Lexicon types and XRPC call helpers for the com.atproto.* endpoints the bot queries.
package atproto
