/*
Package lookup implements the four bot commands: profile, did, handle, and feed.

[Resolver] holds the per-command resolution logic, each returning a value or an error. [Service.Run] is the single boundary that turns any error from a resolution chain into a [NotFoundResult], so callers always get a [Result] and never an error.

Nothing is cached and nothing is shared between requests; concurrent calls to [Service.Run] are independent.
*/
package lookup
