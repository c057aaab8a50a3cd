package gamma

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/gammaerrors"
	"github.com/mateobivoledu/polymarket-gamma-sdk/pkg/transport"
)

// Profile is the public user profile associated with a wallet address.
type Profile struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Pseudonym             string `json:"pseudonym"`
	Bio                   string `json:"bio"`
	ProxyWallet           string `json:"proxyWallet"`
	BaseAddress           string `json:"baseAddress"`
	ProfileImage          string `json:"profileImage"`
	DisplayUsernamePublic bool   `json:"displayUsernamePublic"`
	CreatedAt             string `json:"createdAt"`
}

// ProfilesClient accesses public user profiles.
type ProfilesClient struct {
	transport *transport.Client
}

// GetByAddress returns the public profile for a wallet address. The
// address is checked locally before any request is issued.
func (pc *ProfilesClient) GetByAddress(ctx context.Context, address string) (*Profile, error) {
	if !common.IsHexAddress(address) {
		return nil, &gammaerrors.ValidationError{Msg: fmt.Sprintf("invalid wallet address: %q", address)}
	}
	var p Profile
	if err := pc.transport.Get(ctx, "/profiles/"+url.PathEscape(address), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
