package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/services"
	"github.com/yeremiapane/bakery-order-app/utils"
)

type SessionController struct {
	Store     *services.SessionStore
	UploadDir string
}

func NewSessionController(store *services.SessionStore, uploadDir string) *SessionController {
	return &SessionController{Store: store, UploadDir: uploadDir}
}

// OpenSession -> start a form session from the share link
// (/order/:subscriber_id/:num_products)
func (sc *SessionController) OpenSession(c *gin.Context) {
	subscriberID := c.Param("subscriber_id")
	numProducts, err := strconv.Atoi(c.Param("num_products"))
	if err != nil {
		numProducts = 1
	}

	session := sc.Store.Open(subscriberID, numProducts)
	form := session.Snapshot()

	utils.RespondJSON(c, http.StatusCreated, "Order form opened", gin.H{
		"session_id": session.ID,
		"form":       form,
		"total":      services.ComputeTotal(form.Items, form.DeliveryOption),
	})
}

// GetSession -> current form state plus the running total
func (sc *SessionController) GetSession(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	form := session.Snapshot()
	lines, total := services.QuoteBreakdown(form.Items, form.DeliveryOption)

	utils.RespondJSON(c, http.StatusOK, "Order form", gin.H{
		"session_id":      session.ID,
		"form":            form,
		"lines":           lines,
		"total":           total,
		"total_formatted": utils.FormatPeso(total),
	})
}

// UpdateSession -> apply partial edits to the form. Every field is optional;
// only the ones present in the body change.
func (sc *SessionController) UpdateSession(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	type ItemUpdate struct {
		SizeID         *string `json:"size_id"`
		ShapeID        *string `json:"shape_id"`
		FlavorID       *string `json:"flavor_id"`
		FillingID      *string `json:"filling_id"`
		DesignID       *string `json:"design_id"`
		ProductType    *string `json:"product_type"`
		ProductSubType *string `json:"product_sub_type"`
		OtherProduct   *string `json:"other_product"`
		Message        *string `json:"message"`
		Details        *string `json:"details"`
		Quantity       *int    `json:"quantity"`
		Candle         *string `json:"candle"`
	}

	type UpdateReq struct {
		FacebookName        *string             `json:"facebook_name"`
		CustomerName        *string             `json:"customer_name"`
		ContactNumber       *string             `json:"contact_number"`
		Email               *string             `json:"email"`
		DeliveryOption      *string             `json:"delivery_option"`
		DeliveryDate        *string             `json:"delivery_date"`
		EventTime           *string             `json:"event_time"`
		DeliveryAddress     *string             `json:"delivery_address"`
		IsDifferentReceiver *bool               `json:"is_different_receiver"`
		ReceiverName        *string             `json:"receiver_name"`
		ReceiverContact     *string             `json:"receiver_contact"`
		SpecialInstructions *string             `json:"special_instructions"`
		PaymentMethod       *string             `json:"payment_method"`
		AgreeToTerms        *bool               `json:"agree_to_terms"`
		AgreeToRefundPolicy *bool               `json:"agree_to_refund_policy"`
		Items               map[int]*ItemUpdate `json:"items"`
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session.Mutate(func(form *models.OrderForm) {
		setString(&form.FacebookName, req.FacebookName)
		setString(&form.CustomerName, req.CustomerName)
		setString(&form.ContactNumber, req.ContactNumber)
		setString(&form.Email, req.Email)
		setString(&form.DeliveryOption, req.DeliveryOption)
		setString(&form.DeliveryDate, req.DeliveryDate)
		setString(&form.EventTime, req.EventTime)
		setString(&form.DeliveryAddress, req.DeliveryAddress)
		setString(&form.ReceiverName, req.ReceiverName)
		setString(&form.ReceiverContact, req.ReceiverContact)
		setString(&form.SpecialInstructions, req.SpecialInstructions)
		setString(&form.PaymentMethod, req.PaymentMethod)
		setBool(&form.IsDifferentReceiver, req.IsDifferentReceiver)
		setBool(&form.AgreeToTerms, req.AgreeToTerms)
		setBool(&form.AgreeToRefundPolicy, req.AgreeToRefundPolicy)

		for index, update := range req.Items {
			if update == nil || index < 0 || index >= len(form.Items) {
				continue
			}
			item := &form.Items[index]
			setString(&item.SizeID, update.SizeID)
			setString(&item.ShapeID, update.ShapeID)
			setString(&item.FlavorID, update.FlavorID)
			setString(&item.FillingID, update.FillingID)
			setString(&item.DesignID, update.DesignID)
			setString(&item.ProductType, update.ProductType)
			setString(&item.ProductSubType, update.ProductSubType)
			setString(&item.OtherProduct, update.OtherProduct)
			setString(&item.Message, update.Message)
			setString(&item.Details, update.Details)
			setString(&item.Candle, update.Candle)
			if update.Quantity != nil {
				item.Quantity = *update.Quantity
			}
		}
	})

	form := session.Snapshot()
	utils.RespondJSON(c, http.StatusOK, "Order form updated", gin.H{
		"form":  form,
		"total": services.ComputeTotal(form.Items, form.DeliveryOption),
	})
}

// AddItem -> append another product row
func (sc *SessionController) AddItem(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	count, err := session.AddItem()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product added", gin.H{"items": count})
}

// CloseSession -> the customer navigated away; discard the form and every
// file it still owns
func (sc *SessionController) CloseSession(c *gin.Context) {
	id := c.Param("session_id")
	if _, ok := sc.Store.Get(id); !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}
	sc.Store.Close(id)
	utils.RespondJSON(c, http.StatusOK, "Order form closed", nil)
}

// RemoveItem -> delete a product row and its attachment
func (sc *SessionController) RemoveItem(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid product index"))
		return
	}
	if err := session.RemoveItem(index); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product removed", nil)
}

// UploadItemImage -> attach a reference image to a product row
func (sc *SessionController) UploadItemImage(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid product index"))
		return
	}

	localPath, err := sc.saveUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := session.AttachItemImage(index, localPath); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reference image attached", nil)
}

// UploadPaymentScreenshot -> attach the payment proof
func (sc *SessionController) UploadPaymentScreenshot(c *gin.Context) {
	session, ok := sc.Store.Get(c.Param("session_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("form session not found"))
		return
	}

	localPath, err := sc.saveUpload(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	session.AttachPaymentScreenshot(localPath)

	utils.RespondJSON(c, http.StatusOK, "Payment screenshot attached", nil)
}

func (sc *SessionController) saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("missing %s file: %w", field, err)
	}
	dst := filepath.Join(sc.UploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return dst, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
