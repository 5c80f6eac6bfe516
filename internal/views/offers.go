package views

import (
	"context"
	"fmt"
	"sync"

	"stagelink/internal/api"
	"stagelink/internal/models"
	"stagelink/internal/rules"
	"stagelink/internal/state"
)

// YourOffers is the "Your Offers" page: offers created by the user (as
// venue) and offers they applied to (as performer), each split into
// Active and Finalized sections.
type YourOffers struct {
	API   *api.Client
	Store *state.Store

	live liveness
}

type YourOffersData struct {
	CreatedActive    []models.Offer
	CreatedFinalized []models.Offer
	AppliedActive    []models.Offer
	AppliedFinalized []models.Offer
	CreatedTotal     int
	AppliedTotal     int
}

func (v *YourOffers) Load(ctx context.Context) (YourOffersData, error) {
	meID := v.Store.CurrentUserID()
	if meID == 0 {
		return YourOffersData{}, models.ErrNotLoggedIn
	}
	gen := v.live.next()

	var (
		wg                 sync.WaitGroup
		created, applied   []models.Offer
		createdErr, appErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		created, createdErr = v.API.CreatedOffers(ctx, meID)
	}()
	go func() {
		defer wg.Done()
		applied, appErr = v.API.AppliedOffers(ctx, meID)
	}()
	wg.Wait()

	if !v.live.current(gen) {
		return YourOffersData{}, ErrStale
	}
	if createdErr != nil {
		return YourOffersData{}, fmt.Errorf("load created offers: %w", createdErr)
	}
	if appErr != nil {
		return YourOffersData{}, fmt.Errorf("load applied offers: %w", appErr)
	}

	data := YourOffersData{CreatedTotal: len(created), AppliedTotal: len(applied)}
	data.CreatedActive, data.CreatedFinalized = rules.SplitByLifecycle(created)
	data.AppliedActive, data.AppliedFinalized = rules.SplitByLifecycle(applied)
	return data, nil
}
