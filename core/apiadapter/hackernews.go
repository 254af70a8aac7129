package apiadapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"webfetch-api/core/domain"
	timeutil "webfetch-api/pkg/utils/time"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentItems bounds parallel item requests
const maxConcurrentItems = 5

// hackerNewsListings maps listing routes to ranked ID endpoints
var hackerNewsListings = map[string]struct {
	endpoint string
	title    string
}{
	"":       {"topstories", "Top Stories"},
	"news":   {"topstories", "Top Stories"},
	"front":  {"topstories", "Top Stories"},
	"newest": {"newstories", "New Stories"},
	"best":   {"beststories", "Best Stories"},
	"ask":    {"askstories", "Ask HN"},
	"show":   {"showstories", "Show HN"},
	"jobs":   {"jobstories", "Jobs"},
}

type hackerNewsItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	By          string `json:"by"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
}

// hackerNewsHandler serves the front page and listing routes
type hackerNewsHandler struct {
	api     *Adapter
	baseURL string
	count   int
}

func (h *hackerNewsHandler) matches(u *url.URL) bool {
	if domain.HostOf(u.String()) != "news.ycombinator.com" {
		return false
	}
	_, ok := hackerNewsListings[listingRoute(u)]
	return ok
}

func listingRoute(u *url.URL) string {
	return strings.Trim(u.Path, "/")
}

// fetch loads the ranked ID list then every item concurrently. Items are
// essential: any failed item fails the whole listing.
func (h *hackerNewsHandler) fetch(ctx context.Context, u *url.URL) (string, error) {
	listing := hackerNewsListings[listingRoute(u)]
	base := strings.TrimRight(h.baseURL, "/")

	var ids []int
	if err := h.api.getJSON(ctx, "hackernews", fmt.Sprintf("%s/%s.json", base, listing.endpoint), nil, &ids); err != nil {
		return "", err
	}
	if len(ids) > h.count {
		ids = ids[:h.count]
	}

	items := make([]*hackerNewsItem, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentItems)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			var item *hackerNewsItem
			if err := h.api.getJSON(gctx, "hackernews", fmt.Sprintf("%s/item/%d.json", base, id), nil, &item); err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return formatHackerNews(listing.title, items), nil
}

func formatHackerNews(title string, items []*hackerNewsItem) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hacker News %s:\n", title)

	n := 0
	for _, item := range items {
		// deleted items come back as null
		if item == nil || item.Title == "" {
			continue
		}
		n++
		fmt.Fprintf(&sb, "\n%d. %s\n", n, item.Title)
		fmt.Fprintf(&sb, "   Score: %d | Comments: %d", item.Score, item.Descendants)
		if item.By != "" {
			fmt.Fprintf(&sb, " | By: %s", item.By)
		}
		if posted := timeutil.FromUnix(item.Time); !posted.IsZero() {
			fmt.Fprintf(&sb, " | Posted: %s", posted.Format("2006-01-02 15:04 UTC"))
		}
		sb.WriteString("\n")
		if item.URL != "" {
			fmt.Fprintf(&sb, "   Link: %s\n", item.URL)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
