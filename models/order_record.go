package models

// OrderRecord is the flat row inserted into the hosted "New Facebook Orders"
// table. Column names (including the inconsistent casing between slots and the
// "Addres" spelling) are the collaborator schema and must not be normalized.
// Nullable columns are pointers; a zero OrderRecord is the fully-null template
// the submission builder fills in.
type OrderRecord struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	FacebookName *string `gorm:"column:facebookname" json:"facebookname"`
	Name         *string `gorm:"column:Name" json:"Name"`
	Contact      *string `gorm:"column:contact" json:"contact"`

	// "PICKUP" sentinel when the order is for pickup.
	Addres          *string  `gorm:"column:Addres" json:"Addres"`
	Latitude        *float64 `gorm:"column:latitude" json:"latitude"`
	Longitude       *float64 `gorm:"column:longitude" json:"longitude"`
	ReceiverName    *string  `gorm:"column:receiverName" json:"receiverName"`
	ReceiverContact *string  `gorm:"column:receiverContact" json:"receiverContact"`

	DateOrdered *string `gorm:"column:DateOrdered" json:"DateOrdered"`
	DateEvent   *string `gorm:"column:DateEvent" json:"DateEvent"`
	TimeEvent   *string `gorm:"column:TimeEvent" json:"TimeEvent"`

	PaymentOption *string `gorm:"column:paymentOption" json:"paymentOption"`
	Comment       *string `gorm:"column:Comment" json:"Comment"`

	// orderNumber holds the payment screenshot URL; the display order number
	// lives in Comment. This mirrors the collaborator schema as-is.
	OrderNumber    *string `gorm:"column:orderNumber" json:"orderNumber"`
	NumberProducts *int    `gorm:"column:numberproducts" json:"numberproducts"`
	Branch         *string `gorm:"column:branch" json:"branch"`
	CopiedToList   *bool   `gorm:"column:copiedToList" json:"copiedToList"`
	Hold           *bool   `gorm:"column:hold" json:"hold"`
	ManychatLink   *string `gorm:"column:manychatlink" json:"manychatlink"`

	// Slot 1.
	Product1  *string `gorm:"column:Product1" json:"Product1"`
	Code1     *string `gorm:"column:code1" json:"code1"`
	Message1  *string `gorm:"column:Message1" json:"Message1"`
	Details1  *string `gorm:"column:details1" json:"details1"`
	Quantity1 *int    `gorm:"column:quantity1" json:"quantity1"`
	Price1    *int    `gorm:"column:Price1" json:"Price1"`
	Candle    *string `gorm:"column:Candle" json:"Candle"`
	OrderLink *string `gorm:"column:orderLink" json:"orderLink"`

	// Slot 2.
	Product2  *string `gorm:"column:Product2" json:"Product2"`
	Code2     *string `gorm:"column:code2" json:"code2"`
	Message2  *string `gorm:"column:message2" json:"message2"`
	Details2  *string `gorm:"column:details2" json:"details2"`
	Quantity2 *int    `gorm:"column:quantity2" json:"quantity2"`
	Price2    *int    `gorm:"column:price2" json:"price2"`
	Candle2   *string `gorm:"column:candle2" json:"candle2"`
	Pic2      *string `gorm:"column:pic2" json:"pic2"`

	// Slot 3 has no price column and a text quantity.
	Product3 *string `gorm:"column:product3" json:"product3"`
	Code3    *string `gorm:"column:code3" json:"code3"`
	Message3 *string `gorm:"column:message3" json:"message3"`
	Details3 *string `gorm:"column:details3" json:"details3"`
	Qty3     *string `gorm:"column:qty3" json:"qty3"`
	Candle3  *string `gorm:"column:candle3" json:"candle3"`
	Pic3     *string `gorm:"column:pic3" json:"pic3"`
}

func (OrderRecord) TableName() string {
	return "New Facebook Orders"
}

// MaxRecordItems is the number of item slots in the record. Items beyond the
// cap are silently dropped, matching the collaborator schema.
const MaxRecordItems = 3
