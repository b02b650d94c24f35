package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase/interfaces"
)

var ErrMissingSponsoredAccount = errors.New("missing GITHUB_SPONSORED_ACCOUNT")

// GitHubSponsorsGateway builds the sponsorship handoff URL. There is no
// create API for sponsorships; the payer completes the flow on github.com and
// confirmation arrives later through the payment webhook.

type GitHubSponsorsGateway struct {
	// sponsoredAccount is the GitHub account receiving the sponsorship.
	sponsoredAccount string
}

var _ interfaces.ISponsorshipGateway = (*GitHubSponsorsGateway)(nil)

func NewGitHubSponsorsGateway(sponsoredAccount string) (*GitHubSponsorsGateway, error) {
	sponsoredAccount = strings.TrimSpace(sponsoredAccount)
	if sponsoredAccount == "" {
		log.Printf("[payment][sponsors] missing GITHUB_SPONSORED_ACCOUNT")
		return nil, ErrMissingSponsoredAccount
	}
	return &GitHubSponsorsGateway{sponsoredAccount: sponsoredAccount}, nil
}

func (g *GitHubSponsorsGateway) CreatePayment(ctx context.Context, orderID string, amount entities.Money, sponsorUsername, frequency string, metadata map[string]string) (string, error) {
	// GitHub Sponsors amounts are whole units, rounded up so the sponsorship
	// never undershoots the order total.
	units := amount.Amount / 100
	if amount.Amount%100 != 0 {
		units++
	}

	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", units))
	if frequency == "one_time" {
		q.Set("frequency", "one-time")
	} else {
		q.Set("frequency", "recurring")
	}
	q.Set("metadata_order_id", orderID)
	for k, v := range metadata {
		q.Set("metadata_"+k, v)
	}

	sponsorshipURL := fmt.Sprintf("https://github.com/sponsors/%s/sponsorships?%s", url.PathEscape(g.sponsoredAccount), q.Encode())
	log.Printf("[payment][sponsors] handoff built order_id=%s sponsor=%s frequency=%s", orderID, sponsorUsername, frequency)
	return sponsorshipURL, nil
}
