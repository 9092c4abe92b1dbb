package bsky

// schema: app.bsky.feed.defs

// FeedDefs_GeneratorView is a "generatorView" in the app.bsky.feed.defs schema.
type FeedDefs_GeneratorView struct {
	AcceptsInteractions *bool                  `json:"acceptsInteractions,omitempty" cborgen:"acceptsInteractions,omitempty"`
	Avatar              *string                `json:"avatar,omitempty" cborgen:"avatar,omitempty"`
	Cid                 string                 `json:"cid" cborgen:"cid"`
	ContentMode         *string                `json:"contentMode,omitempty" cborgen:"contentMode,omitempty"`
	Creator             *ActorDefs_ProfileView `json:"creator" cborgen:"creator"`
	Description         *string                `json:"description,omitempty" cborgen:"description,omitempty"`
	Did                 string                 `json:"did" cborgen:"did"`
	DisplayName         string                 `json:"displayName" cborgen:"displayName"`
	IndexedAt           string                 `json:"indexedAt" cborgen:"indexedAt"`
	LikeCount           *int64                 `json:"likeCount,omitempty" cborgen:"likeCount,omitempty"`
	Uri                 string                 `json:"uri" cborgen:"uri"`
}
