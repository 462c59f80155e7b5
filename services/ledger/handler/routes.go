package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dokanbaki/services/ledger/handler/http"
)

// Handler registers the ledger routes
type Handler struct {
	ledgerHandler *http.LedgerHandler
}

// NewHandler creates the ledger route handler
func NewHandler(ledgerHandler *http.LedgerHandler) *Handler {
	return &Handler{
		ledgerHandler: ledgerHandler,
	}
}

// RegisterRoutes mounts the ledger under /ledger. mw must authenticate the
// user and resolve the shop context.
func (h *Handler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	g := e.Group("/ledger", mw...)

	g.GET("/summary", h.ledgerHandler.GetSummary)
	g.GET("/balances", h.ledgerHandler.GetBalances)
	g.GET("/search", h.ledgerHandler.SearchCustomers)

	g.GET("/customers", h.ledgerHandler.GetCustomers)
	g.GET("/customers/:name", h.ledgerHandler.GetCustomerLedger)
	g.DELETE("/customers/:name", h.ledgerHandler.DeleteCustomer)

	g.GET("/dues", h.ledgerHandler.GetDueList)
	g.POST("/dues", h.ledgerHandler.AddDue)
	g.POST("/payments", h.ledgerHandler.AddPayment)
}
