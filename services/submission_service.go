package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/utils"
)

// DatabaseError is a failed insert. It fails the whole submission; the
// collaborator's message is surfaced verbatim.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// SubmissionResult is returned to the caller for the confirmation view.
type SubmissionResult struct {
	Record      *models.OrderRecord `json:"record"`
	OrderNumber string              `json:"order_number"`
	Total       int                 `json:"total"`
}

// SubmissionService turns a validated form into a persisted order record.
type SubmissionService struct {
	db       *gorm.DB
	uploader Uploader
}

func NewSubmissionService(db *gorm.DB, uploader Uploader) *SubmissionService {
	return &SubmissionService{db: db, uploader: uploader}
}

// Submit validates the form, uploads the attached images, builds the record
// and inserts it. Validation failures stop before any upload or insert. An
// individual upload failure only costs that image its URL; an insert failure
// fails the submission.
func (ss *SubmissionService) Submit(ctx context.Context, form *models.OrderForm) (*SubmissionResult, error) {
	if err := ValidateOrder(form); err != nil {
		return nil, err
	}

	orderNumber := fmt.Sprintf("ORD-%d", time.Now().UnixMilli())

	urls := ss.uploadAttachments(ctx, form)

	record := buildRecord(form, orderNumber, urls)
	total := ComputeTotal(form.Items, form.DeliveryOption)

	if err := ss.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, &DatabaseError{Err: err}
	}

	utils.InfoLogger.Printf("Order %s persisted for %s (%d item(s), total %s)",
		orderNumber, form.CustomerName, len(form.Items), utils.FormatPeso(total))

	return &SubmissionResult{
		Record:      record,
		OrderNumber: orderNumber,
		Total:       total,
	}, nil
}

// uploadAttachments fans the uploads out concurrently and waits for all of
// them. Slot 0 is the payment screenshot, slot i+1 the i-th item image. A
// failed or absent upload leaves its slot nil.
func (ss *SubmissionService) uploadAttachments(ctx context.Context, form *models.OrderForm) []*string {
	urls := make([]*string, len(form.Items)+1)

	var wg sync.WaitGroup
	upload := func(slot int, localPath string) {
		defer wg.Done()
		publicURL, err := ss.uploader.Upload(ctx, localPath)
		if err != nil {
			utils.ErrorLogger.Printf("Error uploading file %s: %v", localPath, err)
			return
		}
		urls[slot] = &publicURL
	}

	if form.PaymentScreenshotPath != "" {
		wg.Add(1)
		go upload(0, form.PaymentScreenshotPath)
	}
	for i, item := range form.Items {
		if item.ReferenceImagePath != "" {
			wg.Add(1)
			go upload(i+1, item.ReferenceImagePath)
		}
	}
	wg.Wait()

	return urls
}

// buildRecord fills the fully-null record template with exactly the columns
// the collaborator schema sanctions. Slots past the item count stay null.
func buildRecord(form *models.OrderForm, orderNumber string, urls []*string) *models.OrderRecord {
	record := &models.OrderRecord{}

	record.FacebookName = strPtr(form.FacebookName)
	record.Name = strPtr(form.CustomerName)
	record.Contact = strPtr(form.ContactNumber)

	if form.DeliveryOption == models.DeliveryOptionPickup {
		record.Addres = strPtr("PICKUP")
	} else {
		record.Addres = strPtr(form.DeliveryAddress)
	}
	if form.IsDifferentReceiver {
		record.ReceiverName = strPtr(form.ReceiverName)
		record.ReceiverContact = strPtr(form.ReceiverContact)
	}

	record.DateOrdered = strPtr(time.Now().UTC().Format(time.RFC3339))
	if form.DeliveryDate != "" {
		record.DateEvent = strPtr(form.DeliveryDate)
	}
	if form.EventTime != "" {
		record.TimeEvent = strPtr(form.EventTime + ":00")
	}

	record.PaymentOption = strPtr(form.PaymentMethod)

	comment := []string{orderNumber}
	if form.SpecialInstructions != "" {
		comment = append(comment, form.SpecialInstructions)
	}
	record.Comment = strPtr(strings.Join(comment, "\n\n"))

	record.OrderNumber = urls[0]
	record.NumberProducts = intPtr(len(form.Items))
	record.Branch = strPtr("Cavite")
	record.CopiedToList = boolPtr(false)
	record.Hold = boolPtr(false)

	for i, item := range form.Items {
		if i >= models.MaxRecordItems {
			break
		}
		description := resolveDescription(item)
		imageURL := urls[i+1]
		quantity := item.Quantity

		switch i {
		case 0:
			record.Product1 = strPtr(description)
			record.Message1 = strPtr(item.Message)
			record.Details1 = strPtr(item.Details)
			record.Quantity1 = &quantity
			record.Candle = strPtr(item.Candle)
			record.OrderLink = imageURL
		case 1:
			record.Product2 = strPtr(description)
			record.Message2 = strPtr(item.Message)
			record.Details2 = strPtr(item.Details)
			record.Quantity2 = &quantity
			record.Candle2 = strPtr(item.Candle)
			record.Pic2 = imageURL
		case 2:
			qty := strconv.Itoa(quantity)
			record.Product3 = strPtr(description)
			record.Message3 = strPtr(item.Message)
			record.Details3 = strPtr(item.Details)
			record.Qty3 = &qty
			record.Candle3 = strPtr(item.Candle)
			record.Pic3 = imageURL
		}
	}

	return record
}

// resolveDescription builds the per-slot display description: the product
// type, "type - subtype" when a subtype is chosen, or the customer's own text
// when the "Other"/"Others" sentinel is selected.
func resolveDescription(item models.ItemSelection) string {
	if item.ProductType == models.ProductTypeOther {
		return item.OtherProduct
	}
	description := item.ProductType
	if item.ProductSubType != "" {
		if item.ProductSubType == models.ProductSubTypeOther {
			description += " - " + item.OtherProduct
		} else {
			description += " - " + item.ProductSubType
		}
	}
	return description
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
