package tibia

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResidenceStatusKind tags the variant of a ResidenceStatus.
type ResidenceStatusKind string

const (
	StatusRented          ResidenceStatusKind = "rented"
	StatusAuctionNoBid    ResidenceStatusKind = "auctionNoBid"
	StatusAuctionWithBid  ResidenceStatusKind = "auctionWithBid"
	StatusAuctionFinished ResidenceStatusKind = "auctionFinished"
)

// ResidenceStatus is a tagged union over the rental state of a residence.
// Bid is meaningful for the two auction-with-money variants; ExpiryTime only
// for auctionWithBid, where it is always a future UTC instant derived from
// the page's relative countdown.
type ResidenceStatus struct {
	Kind       ResidenceStatusKind
	Bid        int
	ExpiryTime time.Time
}

// Rented returns the rented status.
func Rented() ResidenceStatus {
	return ResidenceStatus{Kind: StatusRented}
}

// AuctionNoBid returns the no-bid auction status.
func AuctionNoBid() ResidenceStatus {
	return ResidenceStatus{Kind: StatusAuctionNoBid}
}

// AuctionWithBid returns an in-progress auction with the given bid and
// absolute expiry instant.
func AuctionWithBid(bid int, expiry time.Time) ResidenceStatus {
	return ResidenceStatus{Kind: StatusAuctionWithBid, Bid: bid, ExpiryTime: expiry}
}

// AuctionFinished returns a finished auction with its winning bid.
func AuctionFinished(bid int) ResidenceStatus {
	return ResidenceStatus{Kind: StatusAuctionFinished, Bid: bid}
}

type statusJSON struct {
	Type       ResidenceStatusKind `json:"type"`
	Bid        *int                `json:"bid,omitempty"`
	ExpiryTime *time.Time          `json:"expiryTime,omitempty"`
}

// MarshalJSON serializes the union with a "type" discriminator.
func (s ResidenceStatus) MarshalJSON() ([]byte, error) {
	out := statusJSON{Type: s.Kind}
	switch s.Kind {
	case StatusAuctionWithBid:
		bid, expiry := s.Bid, s.ExpiryTime
		out.Bid = &bid
		out.ExpiryTime = &expiry
	case StatusAuctionFinished:
		bid := s.Bid
		out.Bid = &bid
	case StatusRented, StatusAuctionNoBid:
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the union from its tagged form.
func (s *ResidenceStatus) UnmarshalJSON(data []byte) error {
	var in statusJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Type {
	case StatusRented, StatusAuctionNoBid, StatusAuctionWithBid, StatusAuctionFinished:
	default:
		return fmt.Errorf("unexpected residence status type %q", in.Type)
	}
	s.Kind = in.Type
	s.Bid = 0
	s.ExpiryTime = time.Time{}
	if in.Bid != nil {
		s.Bid = *in.Bid
	}
	if in.ExpiryTime != nil {
		s.ExpiryTime = *in.ExpiryTime
	}
	return nil
}
