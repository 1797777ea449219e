package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	repository "github.com/boxpack/boxpack/internal/repositories"
	"github.com/google/uuid"
)

// CartService manages one cart per user. Adding a line freezes the quote
// snapshot; changing dimensions afterwards means configuring a new quote and
// adding a new line. Every distinct add produces its own line even when the
// configurations are identical.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddLine(ctx context.Context, userID uuid.UUID, req *models.AddCartLineRequest) (*models.Cart, error)
	UpdateLineQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateLineQuantityRequest) (*models.Cart, error)
	RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	carts  repository.CartRepository
	quotes QuoteService
}

func NewCartService(carts repository.CartRepository, quotes QuoteService) CartService {
	return &cartService{carts: carts, quotes: quotes}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	return s.getOrCreateCart(ctx, userID)
}

func (s *cartService) AddLine(ctx context.Context, userID uuid.UUID, req *models.AddCartLineRequest) (*models.Cart, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.quotes.BuildSnapshot(ctx, &req.Quote)
	if err != nil {
		return nil, err
	}

	cart.Lines = append(cart.Lines, models.CartLine{
		ID:        uuid.New(),
		Snapshot:  *snapshot,
		Quantity:  1,
		CreatedAt: time.Now(),
	})

	return s.saveCart(ctx, cart)
}

func (s *cartService) UpdateLineQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateLineQuantityRequest) (*models.Cart, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := findLine(cart, req.LineID)
	if idx < 0 {
		return nil, appErrors.NotFoundError("Cart line not found")
	}

	// Zero or negative quantity removes the line.
	if req.Quantity <= 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	} else {
		cart.Lines[idx].Quantity = req.Quantity
	}

	return s.saveCart(ctx, cart)
}

func (s *cartService) RemoveLine(ctx context.Context, userID uuid.UUID, lineID uuid.UUID) (*models.Cart, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := findLine(cart, lineID)
	if idx < 0 {
		return nil, appErrors.NotFoundError("Cart line not found")
	}

	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)

	return s.saveCart(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	cart.Lines = nil

	_, err = s.saveCart(ctx, cart)

	return err
}

func (s *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}

	if err := s.carts.CreateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) saveCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.TotalAmount = FoldCartTotal(cart.Lines)

	if err := s.carts.UpdateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

// FoldCartTotal sums locked line totals. Each line's snapshot already
// includes VAT, so the cart total is a plain weighted sum.
func FoldCartTotal(lines []models.CartLine) float64 {
	var total float64

	for _, line := range lines {
		total += line.Snapshot.Breakdown.TotalPrice * float64(line.Quantity)
	}

	return total
}

func findLine(cart *models.Cart, lineID uuid.UUID) int {
	for i := range cart.Lines {
		if cart.Lines[i].ID == lineID {
			return i
		}
	}

	return -1
}
