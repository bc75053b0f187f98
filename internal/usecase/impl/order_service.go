package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/draft"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/pricing"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/domain/vendorlink"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for the order service
type OrderServiceParams struct {
	fx.In

	Config            *config.Config
	OrderRepo         repository.OrderRepository
	VendorRepo        repository.VendorRepository
	PurchaseOrderRepo repository.PurchaseOrderRepository
	Catalog           usecase.CatalogUsecase
	Auth              usecase.AuthUsecase
	Publisher         service.EventPublisher
	Logger            *slog.Logger
}

type orderService struct {
	orderRepo         repository.OrderRepository
	vendorRepo        repository.VendorRepository
	purchaseOrderRepo repository.PurchaseOrderRepository
	catalog           usecase.CatalogUsecase
	auth              usecase.AuthUsecase
	comparator        *pricing.Comparator
	drafter           *draft.Drafter
	adminOrderURL     string
	defaultPurchaser  int
	pageSize          int
	audit             *auditor
	logger            *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:         params.OrderRepo,
		vendorRepo:        params.VendorRepo,
		purchaseOrderRepo: params.PurchaseOrderRepo,
		catalog:           params.Catalog,
		auth:              params.Auth,
		comparator:        pricing.NewComparator(params.Config.Pricing.HealthyMarginPercent),
		drafter:           draft.NewDrafter(params.Config.Orders.PurchasingEmail),
		adminOrderURL:     params.Config.Orders.AdminOrderURL,
		defaultPurchaser:  params.Config.Orders.DefaultPurchaserID,
		pageSize:          params.Config.Orders.PageSize,
		audit:             newAuditor(params.Publisher, params.Logger),
		logger:            params.Logger,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *orderService) ListOrders(ctx context.Context, filter entity.OrderFilter, page, limit int) (*entity.OrderPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.pageSize
	}
	if filter.FilterMode == "" {
		filter.FilterMode = entity.FilterModeOrder
	}

	result, err := s.orderRepo.List(ctx, entity.OrderQuery{Filter: filter, Page: page, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return result, nil
}

func (s *orderService) Metrics(ctx context.Context) (*entity.OrderMetrics, error) {
	metrics, err := s.orderRepo.Metrics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch order metrics")
	}

	return metrics, nil
}

func (s *orderService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID int, update entity.OrderUpdate) (*entity.Order, error) {
	if orderID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	order, err := s.orderRepo.Update(ctx, orderID, update)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update order %d", orderID)
	}
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditOrderUpdated, OrderID: orderID})

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int) error {
	if orderID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return errors.Wrapf(err, "failed to delete order %d", orderID)
	}
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditOrderDeleted, OrderID: orderID})

	return nil
}

func (s *orderService) UpdateLineItem(ctx context.Context, itemID int, update entity.OrderItemUpdate) (*entity.OrderItem, error) {
	if itemID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item id is required")
	}

	item, err := s.orderRepo.UpdateItem(ctx, itemID, update)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update order item %d", itemID)
	}

	return item, nil
}

func (s *orderService) SelectSupplier(ctx context.Context, orderID, itemID int, selection entity.SupplierSelection) (*entity.OrderItem, error) {
	if itemID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item id is required")
	}
	selection.Supplier = strings.TrimSpace(selection.Supplier)
	if selection.Supplier == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("supplier is required")
	}

	item, err := s.orderRepo.SelectSupplier(ctx, itemID, selection)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record supplier for item %d", itemID)
	}

	s.audit.record(ctx, service.AuditEvent{
		Action:  service.AuditSupplierSelected,
		OrderID: orderID,
		ItemID:  itemID,
		Attributes: map[string]string{
			"supplier": selection.Supplier,
			"cost":     selection.Cost.String(),
		},
	})

	return item, nil
}

func (s *orderService) CreatePurchaseOrder(ctx context.Context, request entity.PurchaseOrderRequest) (*entity.PurchaseOrderResult, error) {
	vendorName := strings.TrimSpace(request.VendorName)
	if vendorName == "" {
		vendorName = strings.TrimSpace(request.Item.SelectedSupplier)
	}
	vendorID, ok := entity.PurchaseOrderVendorID(vendorName)
	if !ok {
		return nil, domainerrors.ErrUnmappedVendor.WithDetails("vendor " + strconv.Quote(vendorName))
	}
	if request.OrderID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}
	if strings.TrimSpace(request.Item.SKU) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item sku is required")
	}

	po, err := s.purchaseOrderRepo.Create(ctx, entity.PurchaseOrder{
		VendorID: vendorID,
		UserID:   s.purchaser(request.UserID),
		OrderID:  request.OrderID,
	})
	if err != nil {
		return nil, s.purchaseOrderFailure(err, "create purchase order")
	}

	line, err := s.purchaseOrderRepo.CreateLineItem(ctx, purchaseOrderLine(po.ID, vendorName, &request.Item))
	if err != nil {
		s.log(ctx).Error("Purchase order created without its line item",
			slog.Int("purchase_order_id", po.ID),
			slog.String("sku", request.Item.SKU),
			slog.Any("error", err),
		)

		return nil, s.purchaseOrderFailure(err, "create purchase order line item")
	}

	s.audit.record(ctx, service.AuditEvent{
		Action:  service.AuditPurchaseOrderCreated,
		OrderID: request.OrderID,
		ItemID:  request.Item.ID,
		Attributes: map[string]string{
			"vendor":            vendorName,
			"purchase_order_id": itoa(po.ID),
			"sku":               request.Item.SKU,
		},
	})

	return &entity.PurchaseOrderResult{PurchaseOrder: *po, LineItem: *line}, nil
}

func (s *orderService) purchaseOrderFailure(err error, step string) error {
	if errors.Is(err, domainerrors.ErrSessionExpired) {
		return err
	}

	return errors.Wrap(domainerrors.ErrPurchaseOrderFailed.WithDetails(err.Error()), step)
}

// purchaser picks the explicit user, then the signed-in operator, then the configured default.
func (s *orderService) purchaser(userID int) int {
	if userID > 0 {
		return userID
	}
	if s.auth != nil {
		if user := s.auth.Current().User; user != nil && user.ID > 0 {
			return user.ID
		}
	}

	return s.defaultPurchaser
}

// purchaseOrderLine uses the selected supplier cost and links the vendor offer when the item carries it.
func purchaseOrderLine(purchaseOrderID int, vendorName string, item *entity.OrderItem) entity.PurchaseOrderLineItem {
	line := entity.PurchaseOrderLineItem{
		PurchaseOrderID:   purchaseOrderID,
		QuantityPurchased: item.QtyOrdered.Or(1),
		ProductSKU:        item.SKU,
	}
	if item.SelectedSupplierCost.Valid {
		line.VendorCost = decimal.NewNullDecimal(item.SelectedSupplierCost.Value)
	}

	for _, offer := range item.Offers() {
		if !strings.EqualFold(offer.VendorName(), vendorName) {
			continue
		}
		if offer.ID > 0 {
			id := offer.ID
			line.VendorProductID = &id
		}
		if !line.VendorCost.Valid && offer.VendorCost.Valid {
			line.VendorCost = decimal.NewNullDecimal(offer.VendorCost.Value)
		}

		break
	}

	return line
}

func (s *orderService) SeedOrders(ctx context.Context) error {
	if err := s.orderRepo.Seed(ctx); err != nil {
		return errors.Wrap(err, "failed to seed orders")
	}
	s.audit.record(ctx, service.AuditEvent{Action: service.AuditOrdersSeeded})

	return nil
}

func (s *orderService) View(order *entity.Order) usecase.OrderView {
	currency := order.Currency()
	items := make([]usecase.ItemView, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		offers := item.Offers()
		links := make(map[string]string, len(offers))
		for j := range offers {
			if link := vendorlink.VendorLink(item.Product, &offers[j]); link != "" {
				links[offers[j].VendorName()] = link
			}
		}
		items = append(items, usecase.ItemView{
			Item:        *item,
			Comparison:  s.comparator.CompareItem(item, currency),
			VendorLinks: links,
			Heavy:       item.IsHeavy(),
		})
	}

	adminURL := ""
	if s.adminOrderURL != "" && order.EntityID > 0 {
		adminURL = s.adminOrderURL + strconv.Itoa(order.EntityID)
	}
	poStatus := order.POStatus()

	return usecase.OrderView{
		Order:             *order,
		POStatus:          poStatus,
		POLabel:           poStatus.Label(),
		StatusLabel:       order.Status.Label(),
		AdminURL:          adminURL,
		CustomerName:      order.CustomerShortName(),
		USOrder:           order.IsUSOrder(),
		RemoteRegion:      order.IsRemoteRegion(),
		FraudWarning:      order.FraudWarning(),
		PaymentLabel:      order.PaymentLabel(),
		HeavyItem:         order.HasHeavyItem(),
		TotalSelectedCost: order.TotalSelectedCost().StringFixed(2),
		Items:             items,
	}
}

// Drafts resolves item brands from the catalog first and the item name last.
func (s *orderService) Drafts(ctx context.Context, order *entity.Order) (*usecase.OrderDrafts, error) {
	if order == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order is required")
	}

	brands := make(map[int]string, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		brand := item.Brand()
		if brand == "" && s.catalog != nil {
			found, err := s.catalog.Brand(ctx, item.SKU)
			if err != nil {
				if errors.Is(err, domainerrors.ErrSessionExpired) {
					return nil, err
				}
				s.log(ctx).Warn("Brand lookup failed", slog.String("sku", item.SKU), slog.Any("error", err))
			}
			brand = strings.TrimSpace(found)
		}
		if brand == "" {
			brand = draft.InferBrand(item.Name)
		}
		brands[item.ID] = brand
	}
	brandOf := func(item *entity.OrderItem) string { return brands[item.ID] }

	drafts := &usecase.OrderDrafts{
		Order: s.drafter.ForOrder(order, brandOf),
		Items: make(map[int]draft.Draft, len(order.Items)),
	}
	for i := range order.Items {
		item := &order.Items[i]
		drafts.Items[item.ID] = s.drafter.ForItem(order, item, brands[item.ID])
	}

	return drafts, nil
}
