package services

import (
	"errors"
	"fmt"

	"brewlocal/internal/repo"
	"brewlocal/pkg/models"
	"brewlocal/pkg/phone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OrderService turns a listing into a WhatsApp order: it builds the
// prefilled message, the wa.me deep link, and records the click for the
// seller's dashboard.
type OrderService struct {
	listingRepo *repo.ListingRepository
	clickRepo   *repo.OrderClickRepository
}

// NewOrderService creates a new order service
func NewOrderService(listingRepo *repo.ListingRepository, clickRepo *repo.OrderClickRepository) *OrderService {
	return &OrderService{
		listingRepo: listingRepo,
		clickRepo:   clickRepo,
	}
}

// PlaceOrder builds the WhatsApp link for a listing and records the click.
// buyerID is nil for anonymous buyers.
func (s *OrderService) PlaceOrder(listingID uuid.UUID, buyerID *uuid.UUID, req models.OrderRequest) (*models.OrderResponse, error) {
	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		return nil, errors.New("listing not found")
	}

	if !listing.IsAvailable {
		return nil, errors.New("listing is not available")
	}

	if listing.Seller == nil || !listing.Seller.IsActive {
		return nil, errors.New("listing is not available")
	}

	if listing.Seller.WhatsAppPhone == "" {
		return nil, errors.New("seller has no WhatsApp number configured")
	}

	message := BuildOrderMessage(listing, req)
	link := phone.WALink(listing.Seller.WhatsAppPhone, message)

	click := &models.OrderClick{
		ListingID: listing.ID,
		BuyerID:   buyerID,
		Message:   message,
		WALink:    link,
	}
	click.SellerID = listing.SellerID

	if err := s.clickRepo.Create(click); err != nil {
		// The buyer still gets their link; losing the click only affects
		// dashboard stats.
		log.Warn().Err(err).Str("listing_id", listing.ID.String()).Msg("Failed to record order click")
	}

	return &models.OrderResponse{
		WALink:  link,
		Message: message,
		ClickID: click.ID,
		Listing: listing,
	}, nil
}

// BuildOrderMessage renders the prefilled WhatsApp message for an order.
func BuildOrderMessage(listing *models.Listing, req models.OrderRequest) string {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	message := fmt.Sprintf("Olá! Vi o item *%s* (%s) no brewlocal e gostaria de pedir %dx.",
		listing.Name, FormatPrice(listing.PriceCents), quantity)
	if req.Note != "" {
		message += " Obs: " + req.Note
	}
	return message
}

// FormatPrice renders integer cents as Brazilian currency, e.g. "R$ 18,50".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
