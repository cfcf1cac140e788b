// Package http exposes the order use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases: requests
// are mapped to commands/queries, results to response envelopes, and errors
// to problem bodies with the matching status code.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// principalHeader carries the authenticated user id, set by the auth gateway
// in front of this service.
const principalHeader = "X-User-Id"

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func init() {
	// Money fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the success envelope shared by all endpoints.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Problem is the error body returned for all failure responses.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// Server implements the HTTP handlers for order creation and retrieval.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	getOrderHandler    queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
}

// OrderItemRequest is one requested line item in the create-order body.
type OrderItemRequest struct {
	DishID   string          `json:"dishId"`
	DishName string          `json:"dishName"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// DeliveryInfoRequest is the delivery details in the create-order body.
type DeliveryInfoRequest struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Address        string `json:"address"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	MerchantID   string              `json:"merchantId"`
	Items        []OrderItemRequest  `json:"items"`
	DeliveryInfo DeliveryInfoRequest `json:"deliveryInfo"`
	Remark       string              `json:"remark"`
}

// validate checks every field of the request and collects one
// "field: message" entry per violation.
func (r CreateOrderRequest) validate() []string {
	var violations []string

	if strings.TrimSpace(r.MerchantID) == "" {
		violations = append(violations, "merchantId: 商家ID不能为空")
	}

	if len(r.Items) == 0 {
		violations = append(violations, "items: 订单至少包含一个餐品")
	}
	for i, item := range r.Items {
		if strings.TrimSpace(item.DishID) == "" {
			violations = append(violations, fmt.Sprintf("items[%d].dishId: 餐品ID不能为空", i))
		}
		if strings.TrimSpace(item.DishName) == "" {
			violations = append(violations, fmt.Sprintf("items[%d].dishName: 餐品名称不能为空", i))
		}
		if item.Quantity < 1 {
			violations = append(violations, fmt.Sprintf("items[%d].quantity: 数量必须大于0", i))
		}
		if item.Price.IsNegative() {
			violations = append(violations, fmt.Sprintf("items[%d].price: 价格必须大于等于0", i))
		}
	}

	if strings.TrimSpace(r.DeliveryInfo.RecipientName) == "" {
		violations = append(violations, "deliveryInfo.recipientName: 收货人姓名不能为空")
	}
	if strings.TrimSpace(r.DeliveryInfo.RecipientPhone) == "" {
		violations = append(violations, "deliveryInfo.recipientPhone: 收货人手机号不能为空")
	} else if !phonePattern.MatchString(r.DeliveryInfo.RecipientPhone) {
		violations = append(violations, "deliveryInfo.recipientPhone: 手机号格式不正确")
	}
	if strings.TrimSpace(r.DeliveryInfo.Address) == "" {
		violations = append(violations, "deliveryInfo.address: 收货地址不能为空")
	} else if utf8.RuneCountInString(r.DeliveryInfo.Address) > 500 {
		violations = append(violations, "deliveryInfo.address: 地址长度不能超过500字符")
	}

	if utf8.RuneCountInString(r.Remark) > 200 {
		violations = append(violations, "remark: 备注长度不能超过200字符")
	}

	return violations
}

// PricingData is the monetary breakdown in a response body.
type PricingData struct {
	ItemsTotal   decimal.Decimal `json:"itemsTotal"`
	PackagingFee decimal.Decimal `json:"packagingFee"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	FinalAmount  decimal.Decimal `json:"finalAmount"`
}

// CreateOrderData is the payload of a successful order creation.
type CreateOrderData struct {
	OrderID     string      `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	Status      string      `json:"status"`
	Pricing     PricingData `json:"pricing"`
	CreatedAt   string      `json:"createdAt"`
}

// OrderItemData is one line item in a retrieved order.
type OrderItemData struct {
	DishID   string          `json:"dishId"`
	DishName string          `json:"dishName"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// DeliveryInfoData is the delivery details in a retrieved order.
type DeliveryInfoData struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Address        string `json:"address"`
}

// GetOrderData is the payload of a successful order retrieval.
type GetOrderData struct {
	OrderID      string           `json:"orderId"`
	OrderNumber  string           `json:"orderNumber"`
	UserID       string           `json:"userId"`
	MerchantID   string           `json:"merchantId"`
	Items        []OrderItemData  `json:"items"`
	DeliveryInfo DeliveryInfoData `json:"deliveryInfo"`
	Remark       string           `json:"remark"`
	Status       string           `json:"status"`
	Pricing      PricingData      `json:"pricing"`
	CreatedAt    string           `json:"createdAt"`
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// authenticated user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := s.principal(ctx)
	if !ok {
		return problem(ctx, http.StatusForbidden, "AccessDeniedException", "缺少认证用户信息")
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return problem(ctx, http.StatusBadRequest, "ValidationError", "请求参数验证失败")
	}

	if violations := request.validate(); len(violations) > 0 {
		return problem(ctx, http.StatusBadRequest, "ValidationError", strings.Join(violations, "; "))
	}

	userID, err := kernel.NewUserID(principal)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	merchantID, err := kernel.NewMerchantID(request.MerchantID)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemInput{
			DishID:   item.DishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID,
		merchantID,
		items,
		commands.DeliveryInfoInput{
			RecipientName:  request.DeliveryInfo.RecipientName,
			RecipientPhone: request.DeliveryInfo.RecipientPhone,
			Address:        request.DeliveryInfo.Address,
		},
		request.Remark,
	)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "订单创建成功",
		Data: CreateOrderData{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			Status:      result.Status,
			Pricing: PricingData{
				ItemsTotal:   result.Pricing.ItemsTotal,
				PackagingFee: result.Pricing.PackagingFee,
				DeliveryFee:  result.Pricing.DeliveryFee,
				FinalAmount:  result.Pricing.FinalAmount,
			},
			CreatedAt: result.CreatedAt.Format(time.RFC3339Nano),
		},
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order owned by
// the authenticated user.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, ok := s.principal(ctx)
	if !ok {
		return problem(ctx, http.StatusForbidden, "AccessDeniedException", "缺少认证用户信息")
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	userID, err := kernel.NewUserID(principal)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problemFromError(ctx, err)
	}

	items := make([]OrderItemData, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemData{
			DishID:   item.DishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "查询成功",
		Data: GetOrderData{
			OrderID:     result.OrderID,
			OrderNumber: result.OrderNumber,
			UserID:      result.UserID,
			MerchantID:  result.MerchantID,
			Items:       items,
			DeliveryInfo: DeliveryInfoData{
				RecipientName:  result.DeliveryInfo.RecipientName,
				RecipientPhone: result.DeliveryInfo.RecipientPhone,
				Address:        result.DeliveryInfo.Address,
			},
			Remark: result.Remark,
			Status: result.Status,
			Pricing: PricingData{
				ItemsTotal:   result.Pricing.ItemsTotal,
				PackagingFee: result.Pricing.PackagingFee,
				DeliveryFee:  result.Pricing.DeliveryFee,
				FinalAmount:  result.Pricing.FinalAmount,
			},
			CreatedAt: result.CreatedAt.Format(time.RFC3339Nano),
		},
	})
}

// principal extracts the authenticated user id set by the auth gateway.
// Requests without one never reach a use case.
func (s *Server) principal(ctx echo.Context) (string, bool) {
	principal := strings.TrimSpace(ctx.Request().Header.Get(principalHeader))
	return principal, principal != ""
}

// problemFromError maps use-case and domain errors onto the error taxonomy:
// not-found conditions to 404, illegal state to 409, validation to 400,
// everything else to an opaque 500.
func (s *Server) problemFromError(ctx echo.Context, err error) error {
	var notFound errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		return problem(ctx, http.StatusNotFound, "OrderNotFoundException",
			fmt.Sprintf("订单不存在: %v", notFound.ID))
	case errors.Is(err, order.ErrOrderNotPayable):
		return problem(ctx, http.StatusConflict, "IllegalStateException", err.Error())
	case errors.Is(err, commands.ErrMultiMerchantOrder):
		return problem(ctx, http.StatusBadRequest, "MultiMerchantOrderException", err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return problem(ctx, http.StatusBadRequest, "ValidationError", err.Error())
	default:
		ctx.Logger().Error(err)
		return problem(ctx, http.StatusInternalServerError, "InternalServerError", "系统内部错误")
	}
}

// problem writes an error body with the given status code.
func problem(ctx echo.Context, status int, title, detail string) error {
	return ctx.JSON(status, Problem{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
