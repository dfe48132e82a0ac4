// Package feed renders approved articles as an RSS 2.0 channel.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/dailypulse/newspaper-service/internal/models"
)

// ContentType is the media type of a rendered feed.
const ContentType = "application/rss+xml; charset=utf-8"

// Builder renders a channel for one site.
type Builder struct {
	Title       string
	Link        string
	Description string
}

// NewBuilder returns a Builder for the site at link.
func NewBuilder(title, link string) *Builder {
	return &Builder{
		Title:       title,
		Link:        strings.TrimRight(link, "/"),
		Description: fmt.Sprintf("Latest approved articles from %s", title),
	}
}

// Render writes articles, in the given order, as RSS items.
func (b *Builder) Render(articles []models.Article) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(b.Title)
	channel.CreateElement("link").SetText(b.Link)
	channel.CreateElement("description").SetText(b.Description)

	for _, a := range articles {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(a.Title)
		link := fmt.Sprintf("%s/article/%s", b.Link, a.ID.Hex())
		item.CreateElement("link").SetText(link)
		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText(a.ID.Hex())
		if a.Description != "" {
			item.CreateElement("description").SetText(a.Description)
		}
		if a.Tag != "" {
			item.CreateElement("category").SetText(a.Tag)
		}
		if a.AuthorEmail != "" {
			item.CreateElement("author").SetText(a.AuthorEmail)
		}
		if a.Publisher != "" {
			src := item.CreateElement("source")
			src.CreateAttr("url", b.Link)
			src.SetText(a.Publisher)
		}
		if t, err := time.Parse(time.RFC3339, a.PostedDate); err == nil {
			item.CreateElement("pubDate").SetText(t.Format(time.RFC1123Z))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render feed: %w", err)
	}
	return out, nil
}
