package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/services"
	"github.com/yeremiapane/bakery-order-app/utils"
)

type OrderController struct {
	Store       *services.SessionStore
	Submissions *services.SubmissionService
}

func NewOrderController(store *services.SessionStore, submissions *services.SubmissionService) *OrderController {
	return &OrderController{Store: store, Submissions: submissions}
}

// QuoteOrder -> stateless price quote for a posted form; the UI calls this on
// every edit, so incomplete forms are fine here
func (oc *OrderController) QuoteOrder(c *gin.Context) {
	type QuoteReq struct {
		Items          []models.ItemSelection `json:"items"`
		DeliveryOption string                 `json:"delivery_option"`
	}

	var req QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	lines, total := services.QuoteBreakdown(req.Items, req.DeliveryOption)
	utils.RespondJSON(c, http.StatusOK, "Price quote", gin.H{
		"lines":           lines,
		"total":           total,
		"total_formatted": utils.FormatPeso(total),
	})
}

// SubmitOrder -> validate, upload attachments, persist the order record.
// Only one submission may be in flight per session.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	session, ok := oc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	if !session.BeginSubmit() {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("a submission is already in progress"))
		return
	}
	defer session.EndSubmit()

	form := session.Snapshot()
	result, err := oc.Submissions.Submit(c.Request.Context(), &form)
	if err != nil {
		var validationErr *services.ValidationError
		var databaseErr *services.DatabaseError
		switch {
		case errors.As(err, &validationErr):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.As(err, &databaseErr):
			utils.RespondError(c, http.StatusInternalServerError, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	// The form is done; drop the session and its stored files.
	oc.Store.Close(session.ID)

	utils.RespondJSON(c, http.StatusCreated, "Order submitted", result)
}
