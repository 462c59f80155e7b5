package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/middleware"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/internal/utils"
	"github.com/piresc/dokanbaki/services/ledger"
)

// LedgerHandler handles HTTP requests for the shop ledger. Every route
// expects the shop context middleware to have authorized the shop.
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// GetBalances returns every customer balance, highest first
func (h *LedgerHandler) GetBalances(c echo.Context) error {
	balances, err := h.ledgerUC.CustomerBalances(c.Request().Context(), middleware.ShopID(c))
	if err != nil {
		return h.fail(c, err, "Failed to load balances")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balances retrieved successfully", balances)
}

// GetCustomers returns the customers ordered by name
func (h *LedgerHandler) GetCustomers(c echo.Context) error {
	customers, err := h.ledgerUC.Customers(c.Request().Context(), middleware.ShopID(c))
	if err != nil {
		return h.fail(c, err, "Failed to load customers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

// GetDueList returns the customers that owe money
func (h *LedgerHandler) GetDueList(c echo.Context) error {
	dues, err := h.ledgerUC.DueList(c.Request().Context(), middleware.ShopID(c))
	if err != nil {
		return h.fail(c, err, "Failed to load due list")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Due list retrieved successfully", dues)
}

// SearchCustomers matches the q query parameter against names and phones
func (h *LedgerHandler) SearchCustomers(c echo.Context) error {
	results, err := h.ledgerUC.Search(c.Request().Context(), middleware.ShopID(c), c.QueryParam("q"))
	if err != nil {
		return h.fail(c, err, "Failed to search customers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Search completed", results)
}

// GetSummary returns the shop dashboard figures
func (h *LedgerHandler) GetSummary(c echo.Context) error {
	summary, err := h.ledgerUC.Summary(c.Request().Context(), middleware.ShopID(c))
	if err != nil {
		return h.fail(c, err, "Failed to load summary")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// GetCustomerLedger returns one customer's history
func (h *LedgerHandler) GetCustomerLedger(c echo.Context) error {
	name, ok := customerParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid customer name")
	}

	result, err := h.ledgerUC.CustomerLedger(c.Request().Context(), middleware.ShopID(c), name)
	if err != nil {
		return h.fail(c, err, "Failed to load customer")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Customer retrieved successfully", result)
}

// DeleteCustomer removes a customer with all of their transactions
func (h *LedgerHandler) DeleteCustomer(c echo.Context) error {
	name, ok := customerParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid customer name")
	}

	if err := h.ledgerUC.DeleteCustomer(c.Request().Context(), middleware.ShopID(c), name); err != nil {
		return h.fail(c, err, "Failed to delete customer")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Customer deleted successfully", nil)
}

// AddDue records a due for a customer
func (h *LedgerHandler) AddDue(c echo.Context) error {
	var req models.EntryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.ledgerUC.AddDue(c.Request().Context(), middleware.ShopID(c), &req)
	if err != nil {
		return h.fail(c, err, "Failed to add due")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Due added successfully", tx)
}

// AddPayment records a payment from a customer
func (h *LedgerHandler) AddPayment(c echo.Context) error {
	var req models.EntryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.ledgerUC.AddPayment(c.Request().Context(), middleware.ShopID(c), &req)
	if err != nil {
		return h.fail(c, err, "Failed to add payment")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment added successfully", tx)
}

// customerParam reads the name path parameter. Echo routes on RawPath when
// the request carries one, leaving the parameter escaped; otherwise it is
// already decoded and must not be unescaped again.
func customerParam(c echo.Context) (string, bool) {
	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			return "", false
		}
		name = unescaped
	}
	return name, name != ""
}

func (h *LedgerHandler) fail(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, ledger.ErrCustomerRequired),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidDate):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, ledger.ErrCustomerNotFound):
		return utils.NotFoundResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), msg,
		logger.String("shop_id", middleware.ShopID(c)),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
