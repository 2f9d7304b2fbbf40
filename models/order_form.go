package models

const (
	DeliveryOptionPickup   = "pickup"
	DeliveryOptionDelivery = "delivery"
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodGcash        = "gcash"
	PaymentMethodBankTransfer = "bank-transfer"
)

// ItemSelection is one ordered product line. The five option ids price the
// item against the catalog; the remaining fields feed the per-slot columns of
// the persisted record.
type ItemSelection struct {
	SizeID    string `json:"size_id"`
	ShapeID   string `json:"shape_id"`
	FlavorID  string `json:"flavor_id"`
	FillingID string `json:"filling_id"`
	DesignID  string `json:"design_id"`

	ProductType    string `json:"product_type"`
	ProductSubType string `json:"product_sub_type"`
	OtherProduct   string `json:"other_product"`

	Message  string `json:"message"`
	Details  string `json:"details"`
	Quantity int    `json:"quantity"`
	Candle   string `json:"candle"`

	// Local path of the stored reference image, owned by the form session.
	ReferenceImagePath string `json:"-"`
}

// OrderForm is the full mutable state of one in-progress order. One instance
// per form session; destroyed on successful submit.
type OrderForm struct {
	SubscriberID string `json:"subscriber_id"`

	FacebookName  string `json:"facebook_name"`
	CustomerName  string `json:"customer_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`

	Items []ItemSelection `json:"items"`

	DeliveryOption      string `json:"delivery_option"`
	DeliveryDate        string `json:"delivery_date"` // YYYY-MM-DD
	EventTime           string `json:"event_time"`    // HH:MM, optional
	DeliveryAddress     string `json:"delivery_address"`
	IsDifferentReceiver bool   `json:"is_different_receiver"`
	ReceiverName        string `json:"receiver_name"`
	ReceiverContact     string `json:"receiver_contact"`

	SpecialInstructions string `json:"special_instructions"`
	PaymentMethod       string `json:"payment_method"`

	AgreeToTerms        bool `json:"agree_to_terms"`
	AgreeToRefundPolicy bool `json:"agree_to_refund_policy"`

	PaymentScreenshotPath string `json:"-"`
}
