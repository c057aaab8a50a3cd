package gamma

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/gammaerrors"
	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Comment is a user comment attached to a market, event, or series.
type Comment struct {
	ID               string `json:"id"`
	Body             string `json:"body"`
	ParentEntityType string `json:"parentEntityType"`
	ParentEntityID   int64  `json:"parentEntityID"`
	ParentCommentID  string `json:"parentCommentID"`
	UserAddress      string `json:"userAddress"`
	ReplyAddress     string `json:"replyAddress"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
	ReactionCount    int    `json:"reactionCount"`
	ReportCount      int    `json:"reportCount"`

	Profile *Profile `json:"profile,omitempty"`
}

// CommentsRequest filters the comment listing. Extra parameters pass
// through verbatim.
type CommentsRequest struct {
	Limit     *int
	Offset    *int
	Order     string
	Ascending *bool

	ParentEntityType string
	ParentEntityID   *int
	GetPositions     *bool
	HoldersOnly      *bool

	Extra url.Values
}

func (r *CommentsRequest) toQuery() url.Values {
	q := url.Values{}
	if r == nil {
		return q
	}
	setInt(q, "limit", r.Limit)
	setInt(q, "offset", r.Offset)
	setString(q, "order", r.Order)
	setBool(q, "ascending", r.Ascending)
	setString(q, "parent_entity_type", r.ParentEntityType)
	setInt(q, "parent_entity_id", r.ParentEntityID)
	setBool(q, "get_positions", r.GetPositions)
	setBool(q, "holders_only", r.HoldersOnly)
	mergeExtra(q, r.Extra)
	return q
}

// CommentsClient accesses comment listings and lookups.
type CommentsClient struct {
	transport *transport.Client
}

// List returns comments matching the request filters.
func (cc *CommentsClient) List(ctx context.Context, req *CommentsRequest) ([]Comment, error) {
	var comments []Comment
	if err := cc.transport.Get(ctx, "/comments", req.toQuery(), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID returns the comment with the given ID.
func (cc *CommentsClient) GetByID(ctx context.Context, id string) (*Comment, error) {
	var c Comment
	if err := cc.transport.Get(ctx, "/comments/"+url.PathEscape(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByUserAddress returns all comments made by a wallet address. The
// address is checked locally before any request is issued.
func (cc *CommentsClient) GetByUserAddress(ctx context.Context, address string) ([]Comment, error) {
	if !common.IsHexAddress(address) {
		return nil, &gammaerrors.ValidationError{Msg: fmt.Sprintf("invalid wallet address: %q", address)}
	}
	var comments []Comment
	if err := cc.transport.Get(ctx, "/comments/user/"+url.PathEscape(address), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
