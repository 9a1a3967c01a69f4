package service

import (
	"context"
	"strings"
	"time"

	"connectvault/internal/apperr"
	"connectvault/internal/model"
	"connectvault/internal/repository"

	"github.com/google/uuid"
)

type PromoLinkInput struct {
	OfferName    *string
	PromoLink    *string
	TrackingLink *string
}

type PromoLinkService interface {
	List(ctx context.Context, ownerID string) ([]*model.PromoLink, error)
	Create(ctx context.Context, ownerID string, in PromoLinkInput) (*model.PromoLink, error)
	Get(ctx context.Context, ownerID, id string) (*model.PromoLink, error)
	Update(ctx context.Context, ownerID, id string, in PromoLinkInput) (*model.PromoLink, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type promoLinkServiceImpl struct {
	promoLinkRepo repository.PromoLinkRepository
}

func NewPromoLinkService(
	promoLinkRepo repository.PromoLinkRepository,
) PromoLinkService {
	return &promoLinkServiceImpl{
		promoLinkRepo: promoLinkRepo,
	}
}

func (s *promoLinkServiceImpl) List(ctx context.Context, ownerID string) ([]*model.PromoLink, error) {
	links, err := s.promoLinkRepo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Store("list promo links", err)
	}

	return links, nil
}

func (s *promoLinkServiceImpl) Create(ctx context.Context, ownerID string, in PromoLinkInput) (*model.PromoLink, error) {
	if in.OfferName == nil || strings.TrimSpace(*in.OfferName) == "" {
		return nil, apperr.Validation("offer_name", "must not be empty")
	}
	if in.PromoLink == nil || strings.TrimSpace(*in.PromoLink) == "" {
		return nil, apperr.Validation("promo_link", "must not be empty")
	}

	link := &model.PromoLink{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		OfferName: strings.TrimSpace(*in.OfferName),
		PromoLink: strings.TrimSpace(*in.PromoLink),
		CreatedAt: time.Now().UTC(),
	}
	if in.TrackingLink != nil {
		link.TrackingLink = *in.TrackingLink
	}

	if err := s.promoLinkRepo.Insert(ctx, link); err != nil {
		return nil, apperr.Store("insert promo link", err)
	}

	return link, nil
}

func (s *promoLinkServiceImpl) Get(ctx context.Context, ownerID, id string) (*model.PromoLink, error) {
	link, err := s.promoLinkRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find promo link", "promo link", err)
	}

	return link, nil
}

func (s *promoLinkServiceImpl) Update(ctx context.Context, ownerID, id string, in PromoLinkInput) (*model.PromoLink, error) {
	link, err := s.promoLinkRepo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, storeErr("find promo link", "promo link", err)
	}

	if in.OfferName != nil {
		if strings.TrimSpace(*in.OfferName) == "" {
			return nil, apperr.Validation("offer_name", "must not be empty")
		}
		link.OfferName = strings.TrimSpace(*in.OfferName)
	}
	if in.PromoLink != nil {
		if strings.TrimSpace(*in.PromoLink) == "" {
			return nil, apperr.Validation("promo_link", "must not be empty")
		}
		link.PromoLink = strings.TrimSpace(*in.PromoLink)
	}
	if in.TrackingLink != nil {
		link.TrackingLink = *in.TrackingLink
	}

	if err := s.promoLinkRepo.Replace(ctx, link); err != nil {
		return nil, storeErr("replace promo link", "promo link", err)
	}

	return link, nil
}

func (s *promoLinkServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.promoLinkRepo.Remove(ctx, ownerID, id); err != nil {
		return storeErr("remove promo link", "promo link", err)
	}

	return nil
}
