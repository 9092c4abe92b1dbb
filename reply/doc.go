// Package reply turns lookup results into chat messages.
//
// [Formatter.Format] is a pure function of its input: no network access, no shared state. The [Message] it returns is complete, so a chat binding only has to copy fields into its own types.
package reply
