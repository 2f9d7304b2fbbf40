package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/services"
	"github.com/yeremiapane/bakery-order-app/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetCatalog -> every option table the form needs in one response
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Catalog options", gin.H{
		"sizes":             models.ListOptions(models.CategorySize),
		"shapes":            models.ListOptions(models.CategoryShape),
		"flavors":           models.ListOptions(models.CategoryFlavor),
		"fillings":          models.ListOptions(models.CategoryFilling),
		"designs":           models.ListOptions(models.CategoryDesign),
		"product_types":     models.ProductTypes,
		"product_sub_types": models.ProductSubTypes,
		"payment_methods": []string{
			models.PaymentMethodCash,
			models.PaymentMethodGcash,
			models.PaymentMethodBankTransfer,
		},
		"delivery_fee": services.DeliveryFee,
	})
}
