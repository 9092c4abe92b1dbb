// Package syntax provides string types for the atproto identifiers the bot accepts as input or reads out of API responses: DIDs, handles, AT identifiers, AT URIs, record keys, and NSIDs.
//
// These are parse-and-check helpers only. Nothing here touches the network.
package syntax
