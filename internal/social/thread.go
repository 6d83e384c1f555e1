// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package social

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// tweetLimit is the weighted character limit of a single post on X.
	tweetLimit = 280

	// linkWeight is the length X counts for any link after shortening.
	linkWeight = 23
)

// markerRoom is the width of the widest "i/n " prefix in an n-post thread.
func markerRoom(n int) int {
	return 2*len(strconv.Itoa(n)) + 2
}

// weightedLength counts runes in s, with every occurrence of url counted as
// linkWeight.
func weightedLength(s, url string) int {
	n := utf8.RuneCountInString(s)
	if url == "" {
		return n
	}
	c := strings.Count(s, url)
	return n - c*utf8.RuneCountInString(url) + c*linkWeight
}

// frameTweet fits the copy into one post when it can and otherwise
// reframes it as a numbered thread: the lead split on word boundaries, then
// the link and hashtags as the closing post.
func frameTweet(parts []string, p post) (string, []string) {
	single := strings.Join(parts, " ")
	if n := weightedLength(single, p.url); n <= tweetLimit {
		return single, []string{fmt.Sprintf("Weighted length %d/%d (links count as %d).", n, tweetLimit, linkWeight)}
	}

	// The prefix widens with the post count, which can in turn add posts.
	room := markerRoom(1)
	posts := threadPosts(parts, room)
	for markerRoom(len(posts)) > room {
		room = markerRoom(len(posts))
		posts = threadPosts(parts, room)
	}
	numbered := make([]string, len(posts))
	for i, s := range posts {
		numbered[i] = fmt.Sprintf("%d/%d %s", i+1, len(posts), s)
	}
	note := fmt.Sprintf("Too long for one post: publish as a %d-post thread, each a reply to the one before.", len(posts))
	return strings.Join(numbered, "\n\n"), []string{note}
}

// threadPosts splits the lead into posts that leave room runes for the
// numbering prefix, then adds the link and hashtags as the closing post.
func threadPosts(parts []string, room int) []string {
	posts := chunkWords(parts[0], tweetLimit-room)
	if tail := strings.Join(parts[1:], " "); tail != "" {
		posts = append(posts, tail)
	}
	return posts
}

// chunkWords splits s into chunks of at most limit runes, breaking between
// words. Runs of whitespace, line breaks included, become single spaces. A
// word longer than limit is cut into limit-rune pieces.
func chunkWords(s string, limit int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0
	for _, w := range splitLong(strings.Fields(s), limit) {
		wl := utf8.RuneCountInString(w)
		if curLen > 0 && curLen+1+wl > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += wl
	}
	if curLen > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// splitLong cuts every word longer than limit runes into pieces of at most
// limit runes.
func splitLong(words []string, limit int) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		r := []rune(w)
		for len(r) > limit {
			out = append(out, string(r[:limit]))
			r = r[limit:]
		}
		out = append(out, string(r))
	}
	return out
}
