package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoVehicleSelected         = errors.New("no vehicle selected")
	ErrInstallationUnavailable   = errors.New("installation unavailable for this product and vehicle")
	ErrInstallationAlreadyActive = errors.New("installation already added")
	ErrInstallationNotActive     = errors.New("installation not added")
	ErrInvalidConfirmationAction = errors.New("invalid confirmation action")
	ErrNoPendingConfirmation     = errors.New("no pending confirmation")
	ErrConfirmationMismatch      = errors.New("confirmation token does not match the pending action")
	ErrChangeNotConfirmed        = errors.New("vehicle change not confirmed")
)

const (
	VehicleSourceGarage = "garage"
	VehicleSourceManual = "manual"
)

// InstallationView is the resolved installation panel of one product.
type InstallationView struct {
	ProductID     string
	State         entities.InstallationState
	Vehicle       *entities.VehicleSelection
	VehicleSource string
	Quote         entities.InstallationQuote
	// Fits is nil when the product declares no compatibility information.
	Fits             *bool
	Selecting        bool
	Pending          *entities.PendingConfirmation
	InstallationCost *float64
	Notice           string
}

// IInstallationUseCase drives the installation service of a product page:
// vehicle selection, price resolution and the confirmation-gated add, remove
// and change-vehicle actions.
type IInstallationUseCase interface {
	GetPanel(ctx context.Context, sessionID, productID string) (InstallationView, error)
	SelectVehicle(ctx context.Context, sessionID, productID, modelName, segment string) (InstallationView, error)
	SubmitManualVehicle(ctx context.Context, sessionID, productID, modelName, segment string) (InstallationView, error)
	Propose(ctx context.Context, sessionID, productID string, action entities.ConfirmationAction) (entities.PendingConfirmation, error)
	Confirm(ctx context.Context, sessionID, productID, token string) (InstallationView, error)
	Cancel(ctx context.Context, sessionID, productID string) (InstallationView, error)
}

// installationCart is the part of the cart the installation flow writes to.
type installationCart interface {
	GetCart(ctx context.Context, sessionID string) (entities.Cart, error)
	AddToCart(ctx context.Context, sessionID, productID string, quantity int, opt entities.InstallationOption) (entities.Cart, error)
	SyncInstallationCost(ctx context.Context, sessionID, productID string, cost float64) (entities.Cart, error)
	DetachInstallation(ctx context.Context, sessionID, productID string) (entities.Cart, error)
}

type InstallationUseCase struct {
	products interfaces.IProductRepository
	panels   interfaces.IInstallationPanelRepository
	garage   IGarageUseCase
	cart     installationCart
	rates    entities.InstallationRateMatrix
	locks    *sessionLocks
	newToken func() string
	now      func() time.Time
}

var _ IInstallationUseCase = (*InstallationUseCase)(nil)

func NewInstallationUseCase(
	products interfaces.IProductRepository,
	panels interfaces.IInstallationPanelRepository,
	garage IGarageUseCase,
	cart installationCart,
	rates entities.InstallationRateMatrix,
) *InstallationUseCase {
	return &InstallationUseCase{
		products: products,
		panels:   panels,
		garage:   garage,
		cart:     cart,
		rates:    rates,
		locks:    newSessionLocks(),
		newToken: uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// panelState is everything a resolution depends on.
type panelState struct {
	sessionID string
	product   entities.Product
	panel     entities.InstallationPanel
	garage    *entities.VehicleSelection
	cart      entities.Cart
}

// GetPanel resolves the quote for the current vehicle. While the service is
// active the resolved fee is pushed into the cart line.
func (u *InstallationUseCase) GetPanel(ctx context.Context, sessionID, productID string) (InstallationView, error) {
	return u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		return false, "", nil
	})
}

// SelectVehicle stores a vehicle picked from the catalog in the garage and
// drops any manual entry for the product. While installation is active the
// change must have been confirmed first.
func (u *InstallationUseCase) SelectVehicle(ctx context.Context, sessionID, productID, modelName, segment string) (InstallationView, error) {
	return u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		if err := u.checkVehicleChange(st); err != nil {
			return false, "", err
		}
		v, err := u.garage.SelectCar(ctx, st.sessionID, modelName, segment)
		if err != nil {
			return false, "", err
		}
		st.garage = &v
		st.panel.ManualVehicle = nil
		vehicleChanged(st)
		return true, "", nil
	})
}

// SubmitManualVehicle records a vehicle that is not in the catalog. An empty
// name is rejected without touching any state.
func (u *InstallationUseCase) SubmitManualVehicle(ctx context.Context, sessionID, productID, modelName, segment string) (InstallationView, error) {
	v, err := parseVehicle(modelName, segment)
	if err != nil {
		return InstallationView{}, err
	}
	return u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		if err := u.checkVehicleChange(st); err != nil {
			return false, "", err
		}
		st.panel.ManualVehicle = &v
		vehicleChanged(st)
		return true, "", nil
	})
}

func (u *InstallationUseCase) checkVehicleChange(st *panelState) error {
	if u.resolve(st).State == entities.InstallationStateServiceActive && !st.panel.Selecting {
		return ErrChangeNotConfirmed
	}
	return nil
}

// vehicleChanged closes the selector and drops a proposal made for the previous vehicle.
func vehicleChanged(st *panelState) {
	st.panel.Selecting = false
	st.panel.Pending = nil
}

// Propose opens a confirmation for action. A new proposal replaces any pending one.
func (u *InstallationUseCase) Propose(ctx context.Context, sessionID, productID string, action entities.ConfirmationAction) (entities.PendingConfirmation, error) {
	if !action.IsValid() {
		return entities.PendingConfirmation{}, ErrInvalidConfirmationAction
	}
	var pending entities.PendingConfirmation
	_, err := u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		view := u.resolve(st)
		title, desc, err := describeAction(action, view)
		if err != nil {
			return false, "", err
		}
		pending = entities.PendingConfirmation{
			Token:       u.newToken(),
			Action:      action,
			Title:       title,
			Description: desc,
			Vehicle:     view.Vehicle,
			Price:       view.Quote.Price,
			CreatedAt:   u.now(),
		}
		st.panel.Pending = &pending
		return true, "", nil
	})
	if err != nil {
		return entities.PendingConfirmation{}, err
	}
	return pending, nil
}

// Confirm applies the pending action identified by token. The pending action
// is consumed on success, so a repeated confirm fails with ErrNoPendingConfirmation.
// A proposal whose vehicle or price no longer resolves is rejected as a mismatch.
func (u *InstallationUseCase) Confirm(ctx context.Context, sessionID, productID, token string) (InstallationView, error) {
	return u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		pending := st.panel.Pending
		if pending == nil {
			return false, "", ErrNoPendingConfirmation
		}
		if pending.Token != token {
			return false, "", ErrConfirmationMismatch
		}
		if view := u.resolve(st); !pending.Quotes(view.Vehicle, view.Quote.Price) {
			zap.L().Warn("installation.confirm stale quote",
				zap.String("session_id", st.sessionID),
				zap.String("product_id", st.product.ID),
				zap.String("action", string(pending.Action)),
			)
			return false, "", ErrConfirmationMismatch
		}

		notice, err := u.apply(ctx, st, pending.Action)
		if err != nil {
			zap.L().Warn("installation.confirm failed",
				zap.String("session_id", st.sessionID),
				zap.String("product_id", st.product.ID),
				zap.String("action", string(pending.Action)),
				zap.Error(err),
			)
			return false, "", err
		}
		st.panel.Pending = nil
		zap.L().Info("installation.confirm",
			zap.String("session_id", st.sessionID),
			zap.String("product_id", st.product.ID),
			zap.String("action", string(pending.Action)),
		)
		return true, notice, nil
	})
}

// Cancel discards the pending action, if any.
func (u *InstallationUseCase) Cancel(ctx context.Context, sessionID, productID string) (InstallationView, error) {
	return u.withPanel(ctx, sessionID, productID, func(st *panelState) (bool, string, error) {
		if st.panel.Pending == nil {
			return false, "", nil
		}
		st.panel.Pending = nil
		return true, "", nil
	})
}

func (u *InstallationUseCase) apply(ctx context.Context, st *panelState, action entities.ConfirmationAction) (string, error) {
	view := u.resolve(st)
	switch action {
	case entities.ConfirmationActionAdd:
		if err := checkAddable(view); err != nil {
			return "", err
		}
		c, err := u.cart.AddToCart(ctx, st.sessionID, st.product.ID, 1, entities.InstallationOption{
			HasInstallation:  true,
			InstallationCost: view.Quote.Price,
		})
		if err != nil {
			return "", err
		}
		st.cart = c
		return "Installation added to cart", nil

	case entities.ConfirmationActionRemove:
		if view.State != entities.InstallationStateServiceActive {
			return "", ErrInstallationNotActive
		}
		// The vehicle shares the service lifecycle: removing one clears the other.
		if err := u.garage.ClearGarage(ctx, st.sessionID); err != nil {
			return "", err
		}
		c, err := u.cart.DetachInstallation(ctx, st.sessionID, st.product.ID)
		if err != nil {
			u.restoreGarage(ctx, st)
			return "", err
		}
		st.cart = c
		st.garage = nil
		st.panel.ManualVehicle = nil
		st.panel.Selecting = false
		return "Installation removed", nil

	case entities.ConfirmationActionChange:
		if view.State != entities.InstallationStateServiceActive {
			return "", ErrInstallationNotActive
		}
		st.panel.Selecting = true
		return "", nil
	}
	return "", ErrInvalidConfirmationAction
}

// restoreGarage puts back the vehicle cleared by a remove that could not detach
// the service from the cart.
func (u *InstallationUseCase) restoreGarage(ctx context.Context, st *panelState) {
	if st.garage == nil {
		return
	}
	if _, err := u.garage.SelectCar(ctx, st.sessionID, st.garage.ModelName, string(st.garage.Segment)); err != nil {
		zap.L().Error("installation.remove garage restore failed",
			zap.String("session_id", st.sessionID),
			zap.String("product_id", st.product.ID),
			zap.Error(err),
		)
	}
}

func checkAddable(view InstallationView) error {
	switch {
	case view.State == entities.InstallationStateServiceActive:
		return ErrInstallationAlreadyActive
	case view.Vehicle == nil:
		return ErrNoVehicleSelected
	case !view.Quote.IsAvailable:
		return ErrInstallationUnavailable
	}
	return nil
}

func describeAction(action entities.ConfirmationAction, view InstallationView) (string, string, error) {
	switch action {
	case entities.ConfirmationActionAdd:
		if err := checkAddable(view); err != nil {
			return "", "", err
		}
		return "Add installation?",
			fmt.Sprintf("Professional installation for your %s (%s) will be added to your cart for %.2f per unit.",
				view.Vehicle.ModelName, view.Vehicle.Segment, *view.Quote.Price),
			nil
	case entities.ConfirmationActionRemove:
		if view.State != entities.InstallationStateServiceActive {
			return "", "", ErrInstallationNotActive
		}
		desc := "Installation will be removed from your cart."
		if view.Vehicle != nil {
			desc = fmt.Sprintf("Installation will be removed from your cart and your saved vehicle %s will be cleared.",
				view.Vehicle.ModelName)
		}
		return "Remove installation?", desc, nil
	case entities.ConfirmationActionChange:
		if view.State != entities.InstallationStateServiceActive {
			return "", "", ErrInstallationNotActive
		}
		return "Change vehicle?",
			"Pick another vehicle. The installation fee in your cart will follow the new selection.",
			nil
	}
	return "", "", ErrInvalidConfirmationAction
}

// withPanel loads the panel state under the session/product lock, runs step,
// saves the panel when step reports a change and returns the re-resolved view.
func (u *InstallationUseCase) withPanel(
	ctx context.Context,
	sessionID, productID string,
	step func(st *panelState) (changed bool, notice string, err error),
) (InstallationView, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return InstallationView{}, err
	}
	product, err := loadProduct(ctx, u.products, productID)
	if err != nil {
		return InstallationView{}, err
	}

	unlock := u.locks.lock(sessionID + "/" + product.ID)
	defer unlock()

	st, err := u.load(ctx, sessionID, product)
	if err != nil {
		return InstallationView{}, err
	}

	changed, notice, err := step(st)
	if err != nil {
		return InstallationView{}, err
	}
	if changed {
		st.panel.UpdatedAt = u.now()
		if err := u.panels.Save(ctx, st.panel); err != nil {
			return InstallationView{}, err
		}
	}

	view, err := u.propagate(ctx, st)
	if err != nil {
		return InstallationView{}, err
	}
	view.Notice = notice
	return view, nil
}

func (u *InstallationUseCase) load(ctx context.Context, sessionID string, product entities.Product) (*panelState, error) {
	panel, err := u.panels.Get(ctx, sessionID, product.ID)
	if err != nil {
		return nil, err
	}
	panel.SessionID = sessionID
	panel.ProductID = product.ID

	garage, err := u.garage.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c, err := u.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &panelState{sessionID: sessionID, product: product, panel: panel, garage: garage, cart: c}, nil
}

// propagate resolves the view and, while installation is active, binds the
// freshly resolved fee to the cart line. An unavailable quote leaves the bound
// fee untouched.
func (u *InstallationUseCase) propagate(ctx context.Context, st *panelState) (InstallationView, error) {
	view := u.resolve(st)
	if view.State != entities.InstallationStateServiceActive || !view.Quote.IsAvailable {
		return view, nil
	}
	if view.InstallationCost != nil && *view.InstallationCost == *view.Quote.Price {
		return view, nil
	}
	c, err := u.cart.SyncInstallationCost(ctx, st.sessionID, st.product.ID, *view.Quote.Price)
	if err != nil {
		return InstallationView{}, err
	}
	st.cart = c
	zap.L().Info("installation.cost updated",
		zap.String("session_id", st.sessionID),
		zap.String("product_id", st.product.ID),
		zap.Float64("cost", *view.Quote.Price),
	)
	return u.resolve(st), nil
}

// resolve is a pure function of the loaded state.
func (u *InstallationUseCase) resolve(st *panelState) InstallationView {
	view := InstallationView{
		ProductID: st.product.ID,
		Selecting: st.panel.Selecting,
		Pending:   st.panel.Pending,
	}
	switch {
	case st.panel.ManualVehicle != nil && st.panel.ManualVehicle.IsComplete():
		v := *st.panel.ManualVehicle
		view.Vehicle = &v
		view.VehicleSource = VehicleSourceManual
	case st.garage != nil:
		v := *st.garage
		view.Vehicle = &v
		view.VehicleSource = VehicleSourceGarage
	}

	view.Quote = u.rates.Quote(st.product, view.Vehicle)
	if view.Vehicle != nil {
		if fits, known := st.product.Fit(*view.Vehicle); known {
			view.Fits = &fits
		}
	}

	line, active := st.cart.InstalledLine(st.product.ID)
	switch {
	case active:
		view.State = entities.InstallationStateServiceActive
		view.InstallationCost = line.InstallationCost
	case view.Vehicle != nil:
		view.State = entities.InstallationStateVehicleSelected
	default:
		view.State = entities.InstallationStateNoVehicle
	}
	return view
}
