package blog

// Assemble attaches to every post the comments whose BlogID matches the post ID.
// Post order and the relative order of comments are kept as given, so the
// ordering is decided by the store. A post without comments gets an empty,
// non-nil slice (serialized as []).
func Assemble(posts []Post, comments []Comment) []FeedItem {
	byPost := make(map[int64][]Comment, len(posts))
	for _, c := range comments {
		byPost[c.BlogID] = append(byPost[c.BlogID], c)
	}

	feed := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		postComments := byPost[p.ID]
		if postComments == nil {
			postComments = []Comment{}
		}
		feed = append(feed, FeedItem{
			Post:     p,
			Comments: postComments,
		})
	}

	return feed
}
