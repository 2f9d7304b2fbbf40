package services

import (
	"context"
	"fmt"
	"path"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/bakery-order-app/models"
	"github.com/yeremiapane/bakery-order-app/utils"
)

type stubUploader struct {
	mu        sync.Mutex
	calls     []string
	failPaths map[string]bool
}

func (s *stubUploader) Upload(ctx context.Context, localPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, localPath)
	if s.failPaths[localPath] {
		return "", fmt.Errorf("bucket rejected the file")
	}
	return "https://storage.example.com/cakepics/" + path.Base(localPath), nil
}

func (s *stubUploader) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func setupSubmissionTest(t *testing.T) (*SubmissionService, *stubUploader, *gorm.DB) {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.OrderRecord{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	uploader := &stubUploader{failPaths: make(map[string]bool)}
	return NewSubmissionService(db, uploader), uploader, db
}

func TestSubmitTwoItemsPickup(t *testing.T) {
	service, _, db := setupSubmissionTest(t)

	form := validForm()
	form.Items = []models.ItemSelection{pricedItem(), cheapItem()}
	form.Items[0].ProductType = "1 Tier"
	form.Items[0].ProductSubType = "Bento Cake (4\")"
	form.Items[0].Message = "Happy Birthday, Juan!"
	form.Items[0].Candle = "1pc stick candle"
	form.Items[1].ProductType = "Cupcakes & Pastries"
	form.Items[1].ProductSubType = "Brownies"
	form.Items[1].Quantity = 12
	form.SpecialInstructions = "Please pack for travel"

	result, err := service.Submit(context.Background(), form)
	assert.NoError(t, err)
	assert.NotNil(t, result)

	// No delivery surcharge on pickup.
	assert.Equal(t, 1820, result.Total)
	assert.Contains(t, result.OrderNumber, "ORD-")

	record := result.Record
	assert.Equal(t, "PICKUP", *record.Addres)
	assert.Equal(t, "Juan dela Cruz", *record.Name)
	assert.Equal(t, 2, *record.NumberProducts)
	assert.Equal(t, "Cavite", *record.Branch)
	assert.Equal(t, result.OrderNumber+"\n\nPlease pack for travel", *record.Comment)

	assert.Equal(t, "1 Tier - Bento Cake (4\")", *record.Product1)
	assert.Equal(t, "Happy Birthday, Juan!", *record.Message1)
	assert.Equal(t, 1, *record.Quantity1)
	assert.Equal(t, "1pc stick candle", *record.Candle)

	assert.Equal(t, "Cupcakes & Pastries - Brownies", *record.Product2)
	assert.Equal(t, 12, *record.Quantity2)

	// Slot 3 stays null end to end.
	assert.Nil(t, record.Product3)
	assert.Nil(t, record.Message3)
	assert.Nil(t, record.Details3)
	assert.Nil(t, record.Qty3)
	assert.Nil(t, record.Candle3)
	assert.Nil(t, record.Pic3)

	// Placeholders the schema keeps null.
	assert.Nil(t, record.Code1)
	assert.Nil(t, record.Price1)
	assert.Nil(t, record.Latitude)
	assert.Nil(t, record.ManychatLink)

	var count int64
	db.Model(&models.OrderRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitDeliveryAddsSurcharge(t *testing.T) {
	service, _, _ := setupSubmissionTest(t)

	form := validForm()
	form.DeliveryOption = models.DeliveryOptionDelivery
	form.DeliveryAddress = "123 Molino Blvd, Bacoor, Cavite"

	result, err := service.Submit(context.Background(), form)
	assert.NoError(t, err)
	assert.Equal(t, 1470+DeliveryFee, result.Total)
	assert.Equal(t, "123 Molino Blvd, Bacoor, Cavite", *result.Record.Addres)
}

func TestSubmitUploadsConcurrentlyAndDegradesOnFailure(t *testing.T) {
	service, uploader, db := setupSubmissionTest(t)
	uploader.failPaths["item0.jpg"] = true

	form := validForm()
	form.Items = []models.ItemSelection{pricedItem(), cheapItem()}
	form.Items[0].ReferenceImagePath = "item0.jpg"
	form.Items[1].ReferenceImagePath = "item1.jpg"
	form.PaymentScreenshotPath = "payment.png"

	result, err := service.Submit(context.Background(), form)
	assert.NoError(t, err)
	assert.Equal(t, 3, uploader.callCount())

	record := result.Record
	// The failed upload only costs that item its image.
	assert.Nil(t, record.OrderLink)
	assert.NotNil(t, record.Pic2)
	assert.Equal(t, "https://storage.example.com/cakepics/item1.jpg", *record.Pic2)
	assert.NotNil(t, record.OrderNumber)
	assert.Equal(t, "https://storage.example.com/cakepics/payment.png", *record.OrderNumber)

	var count int64
	db.Model(&models.OrderRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitValidationFailureStopsBeforeUploads(t *testing.T) {
	service, uploader, db := setupSubmissionTest(t)

	form := validForm()
	form.Items[0].SizeID = ""
	form.Items[0].ReferenceImagePath = "item0.jpg"

	result, err := service.Submit(context.Background(), form)
	assert.Nil(t, result)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Cake 1: Size is required", err.Error())

	assert.Equal(t, 0, uploader.callCount())
	var count int64
	db.Model(&models.OrderRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitDatabaseFailure(t *testing.T) {
	service, _, db := setupSubmissionTest(t)
	assert.NoError(t, db.Migrator().DropTable(&models.OrderRecord{}))

	result, err := service.Submit(context.Background(), validForm())
	assert.Nil(t, result)

	var databaseErr *DatabaseError
	assert.ErrorAs(t, err, &databaseErr)
}

func TestSubmitExtraItemsBeyondSlotCapAreDropped(t *testing.T) {
	service, _, _ := setupSubmissionTest(t)

	form := validForm()
	form.Items = []models.ItemSelection{pricedItem(), pricedItem(), pricedItem(), pricedItem()}
	for i := range form.Items {
		form.Items[i].ProductType = "2 Tier"
		form.Items[i].ProductSubType = "6\"x9\""
	}

	result, err := service.Submit(context.Background(), form)
	assert.NoError(t, err)

	record := result.Record
	assert.NotNil(t, record.Product1)
	assert.NotNil(t, record.Product2)
	assert.NotNil(t, record.Product3)
	// Slot 3 carries the text quantity quirk.
	assert.Equal(t, "1", *record.Qty3)
	// All four items still count and price.
	assert.Equal(t, 4, *record.NumberProducts)
	assert.Equal(t, 4*1470, result.Total)
}

func TestResolveDescription(t *testing.T) {
	tests := []struct {
		name string
		item models.ItemSelection
		want string
	}{
		{
			name: "type only",
			item: models.ItemSelection{ProductType: "4 Tier"},
			want: "4 Tier",
		},
		{
			name: "type with subtype",
			item: models.ItemSelection{ProductType: "1 Tier", ProductSubType: "Bento Cake (4\")"},
			want: "1 Tier - Bento Cake (4\")",
		},
		{
			name: "subtype sentinel uses the free text",
			item: models.ItemSelection{ProductType: "1 Tier", ProductSubType: "Others", OtherProduct: "number cake"},
			want: "1 Tier - number cake",
		},
		{
			name: "type sentinel replaces everything",
			item: models.ItemSelection{ProductType: "Other", ProductSubType: "ignored", OtherProduct: "croquembouche"},
			want: "croquembouche",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveDescription(tt.item))
		})
	}
}
