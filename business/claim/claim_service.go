package claim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"giveLocal/domain"
	"giveLocal/pkg/logger"
)

// Reward granted to a donor when their item is claimed.
const (
	donorRewardPoints    = 50
	donorRewardDonations = 1
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrAlreadyClaimed = errors.New("item already claimed")
	ErrOwnItem        = errors.New("cannot act on your own item")
)

type ItemRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Item, error)
	ClaimItem(ctx context.Context, itemID, userID uint64) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	AddReward(ctx context.Context, userID uint64, donations, points int) error
	UpdateIgnoredItems(ctx context.Context, userID uint64, ignored []byte) error
}

type ClaimService struct {
	itemRepo ItemRepository
	userRepo UserRepository
}

func NewClaimService(itemRepo ItemRepository, userRepo UserRepository) *ClaimService {
	return &ClaimService{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// AcceptResult carries contact details for both parties so they can
// coordinate the handover.
type AcceptResult struct {
	Donor    domain.User `json:"donor"`
	Receiver domain.User `json:"receiver"`
}

// Accept claims itemID for userID and rewards the donor. The claim
// itself is a compare-and-set in the item repository, so two concurrent
// accepts cannot both succeed.
func (s *ClaimService) Accept(ctx context.Context, userID, itemID uint64) (AcceptResult, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return AcceptResult{}, ErrItemNotFound
	}

	if item.IsClaimed {
		return AcceptResult{}, ErrAlreadyClaimed
	}

	if err := s.itemRepo.ClaimItem(ctx, itemID, userID); err != nil {
		return AcceptResult{}, ErrAlreadyClaimed
	}

	if err := s.userRepo.AddReward(ctx, item.OwnerID, donorRewardDonations, donorRewardPoints); err != nil {
		// Claim already landed; the reward failing should not undo it.
		logger.Error("Failed to reward donor", "donor_id", item.OwnerID, err)
	}

	donor, err := s.userRepo.FindByID(ctx, item.OwnerID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("donor user not found: %w", err)
	}
	receiver, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("receiver user not found: %w", err)
	}

	donor.Password = ""
	receiver.Password = ""

	return AcceptResult{Donor: donor, Receiver: receiver}, nil
}

// Pass records that userID is not interested in itemID. Passing is
// idempotent: an already-ignored item is left as-is.
func (s *ClaimService) Pass(ctx context.Context, userID, itemID uint64) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return ErrItemNotFound
	}

	if item.OwnerID == userID {
		return ErrOwnItem
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	var ignored []uint64
	if len(user.IgnoredItems) > 0 {
		if err := json.Unmarshal(user.IgnoredItems, &ignored); err != nil {
			return fmt.Errorf("failed to decode ignored items: %w", err)
		}
	}

	for _, id := range ignored {
		if id == itemID {
			return nil
		}
	}

	ignored = append(ignored, itemID)
	encoded, err := json.Marshal(ignored)
	if err != nil {
		return fmt.Errorf("failed to encode ignored items: %w", err)
	}

	return s.userRepo.UpdateIgnoredItems(ctx, userID, encoded)
}
