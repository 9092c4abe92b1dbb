/*
Package identity resolves DIDs to DID documents, and DID documents to the handle they declare.

Resolution is one-directional: the bot reports the handle an account declares in its DID document (the first "at://" entry in alsoKnownAs), without checking that the handle resolves back to the same DID. There is no caching; every call goes to the network.

Two DID methods are distinguished. "did:web" documents are fetched from the well-known path on the DID's hostname. Every other DID is looked up in a PLC directory service (https://plc.directory by default), keyed by the full DID string.
*/
package identity
