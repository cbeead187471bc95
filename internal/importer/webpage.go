package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"github.com/playlistlab/playlist-builder/internal/builder"
	"github.com/playlistlab/playlist-builder/internal/domain"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// WebpageImporter scrapes playlist pages that publish their tracks as a
// table with title, creator and location cells.
type WebpageImporter struct {
	userAgent string
	timeout   time.Duration
}

func NewWebpageImporter() *WebpageImporter {
	return &WebpageImporter{
		userAgent: defaultUserAgent,
		timeout:   30 * time.Second,
	}
}

func (w *WebpageImporter) Name() string {
	return SourceWebpage
}

// row holds one scraped track before it is fed through the builder.
type row struct {
	title    string
	creator  string
	location string
}

func (w *WebpageImporter) Import(ctx context.Context, url string) (*domain.Playlist, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("not a web URL: %s", url)
	}

	title, rows, err := w.scrape(url)
	if err != nil {
		return nil, fmt.Errorf("scraping failed: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no tracks found on page")
	}

	b := builder.New()
	return b.BuildPlaylist(func() error {
		if title != "" {
			if err := b.SetTitle(title); err != nil {
				return err
			}
		}

		for _, r := range rows {
			err := b.BuildTrack(func() error {
				if r.title != "" {
					if err := b.SetTitle(r.title); err != nil {
						return err
					}
				}
				if r.creator != "" {
					if err := b.SetCreator(r.creator); err != nil {
						return err
					}
				}
				if r.location != "" {
					return b.SetLocation(r.location)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *WebpageImporter) scrape(url string) (string, []row, error) {
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
		colly.UserAgent(w.userAgent),
	)
	c.SetRequestTimeout(w.timeout)

	var title string
	var rows []row

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("table.tracklist tr", func(e *colly.HTMLElement) {
		r := scrapeRow(e.DOM)
		if r.title == "" && r.location == "" {
			return
		}
		rows = append(rows, r)
	})

	if err := c.Visit(url); err != nil {
		return "", nil, err
	}

	slog.Debug("Scraped playlist page", "url", url, "title", title, "tracks", len(rows))
	return title, rows, nil
}

// scrapeRow reads one track row. The location comes from either a
// td.location cell or the first link in the row.
func scrapeRow(sel *goquery.Selection) row {
	r := row{
		title:   strings.TrimSpace(sel.Find("td.title").Text()),
		creator: strings.TrimSpace(sel.Find("td.creator").Text()),
	}

	r.location = strings.TrimSpace(sel.Find("td.location").Text())
	if r.location == "" {
		if href, ok := sel.Find("a").First().Attr("href"); ok {
			r.location = strings.TrimSpace(href)
		}
	}
	return r
}
