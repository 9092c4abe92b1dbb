package bsky

// schema: app.bsky.actor.defs

// ActorDefs_ProfileView is a "profileView" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileView struct {
	Avatar      *string `json:"avatar,omitempty" cborgen:"avatar,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty" cborgen:"createdAt,omitempty"`
	Description *string `json:"description,omitempty" cborgen:"description,omitempty"`
	Did         string  `json:"did" cborgen:"did"`
	DisplayName *string `json:"displayName,omitempty" cborgen:"displayName,omitempty"`
	Handle      string  `json:"handle" cborgen:"handle"`
	IndexedAt   *string `json:"indexedAt,omitempty" cborgen:"indexedAt,omitempty"`
}

// ActorDefs_ProfileViewDetailed is a "profileViewDetailed" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileViewDetailed struct {
	Avatar         *string `json:"avatar,omitempty" cborgen:"avatar,omitempty"`
	Banner         *string `json:"banner,omitempty" cborgen:"banner,omitempty"`
	CreatedAt      *string `json:"createdAt,omitempty" cborgen:"createdAt,omitempty"`
	Description    *string `json:"description,omitempty" cborgen:"description,omitempty"`
	Did            string  `json:"did" cborgen:"did"`
	DisplayName    *string `json:"displayName,omitempty" cborgen:"displayName,omitempty"`
	FollowersCount *int64  `json:"followersCount,omitempty" cborgen:"followersCount,omitempty"`
	FollowsCount   *int64  `json:"followsCount,omitempty" cborgen:"followsCount,omitempty"`
	Handle         string  `json:"handle" cborgen:"handle"`
	IndexedAt      *string `json:"indexedAt,omitempty" cborgen:"indexedAt,omitempty"`
	PostsCount     *int64  `json:"postsCount,omitempty" cborgen:"postsCount,omitempty"`
}
