package gamma

import (
	"context"
	"net/url"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Tag is a category label attached to markets and events.
type Tag struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Slug        string `json:"slug"`
	ForceShow   bool   `json:"forceShow"`
	ForceHide   bool   `json:"forceHide"`
	IsCarousel  bool   `json:"isCarousel"`
	PublishedAt string `json:"publishedAt"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// RelatedTag is the untyped relation record returned by the
// tags-related-tag endpoints. Its shape differs from Tag (it carries
// relation metadata such as rank), so it is surfaced as a raw mapping.
type RelatedTag = map[string]any

// TagsRequest filters the tag listing. Extra parameters pass through
// verbatim.
type TagsRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	IncludeTemplate *bool
	IsCarousel      *bool

	Extra url.Values
}

func (r *TagsRequest) toQuery() url.Values {
	q := url.Values{}
	if r == nil {
		return q
	}
	setInt(q, "limit", r.Limit)
	setInt(q, "offset", r.Offset)
	setString(q, "order", r.Order)
	setBool(q, "ascending", r.Ascending)
	setBool(q, "include_template", r.IncludeTemplate)
	setBool(q, "is_carousel", r.IsCarousel)
	mergeExtra(q, r.Extra)
	return q
}

// TagsClient accesses tag listings, lookups, and relation endpoints.
type TagsClient struct {
	transport *transport.Client
}

// List returns tags matching the request filters.
func (tc *TagsClient) List(ctx context.Context, req *TagsRequest) ([]Tag, error) {
	var tags []Tag
	if err := tc.transport.Get(ctx, "/tags", req.toQuery(), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetByID returns the tag with the given ID.
func (tc *TagsClient) GetByID(ctx context.Context, id string) (*Tag, error) {
	var t Tag
	if err := tc.transport.Get(ctx, "/tags/"+url.PathEscape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetBySlug returns the tag with the given slug.
func (tc *TagsClient) GetBySlug(ctx context.Context, slug string) (*Tag, error) {
	var t Tag
	if err := tc.transport.Get(ctx, "/tags/slug/"+url.PathEscape(slug), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRelatedByID returns raw tag relation records for a tag ID. This is a
// distinct endpoint from GetTagsRelatedToID with a different response
// shape; both are preserved.
func (tc *TagsClient) GetRelatedByID(ctx context.Context, id string) ([]RelatedTag, error) {
	var related []RelatedTag
	if err := tc.transport.Get(ctx, "/tags-related-tag-id/"+url.PathEscape(id), nil, &related); err != nil {
		return nil, err
	}
	return related, nil
}

// GetRelatedBySlug returns raw tag relation records for a tag slug.
func (tc *TagsClient) GetRelatedBySlug(ctx context.Context, slug string) ([]RelatedTag, error) {
	var related []RelatedTag
	if err := tc.transport.Get(ctx, "/tags-related-tag-slug/"+url.PathEscape(slug), nil, &related); err != nil {
		return nil, err
	}
	return related, nil
}

// GetTagsRelatedToID returns the full Tag objects related to a tag ID.
func (tc *TagsClient) GetTagsRelatedToID(ctx context.Context, id string) ([]Tag, error) {
	var tags []Tag
	if err := tc.transport.Get(ctx, "/tags/"+url.PathEscape(id)+"/related", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagsRelatedToSlug returns the full Tag objects related to a tag slug.
func (tc *TagsClient) GetTagsRelatedToSlug(ctx context.Context, slug string) ([]Tag, error) {
	var tags []Tag
	if err := tc.transport.Get(ctx, "/tags/slug/"+url.PathEscape(slug)+"/related", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
