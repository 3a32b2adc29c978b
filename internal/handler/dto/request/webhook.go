package request

// Hotmart's webhook schema has drifted across versions: the same logical
// field may arrive at the top level or nested under "data". Each accessor
// tries the known locations in order and returns the first non-empty value.

type HotmartBuyer struct {
	Email         string `json:"email"`
	CheckoutPhone string `json:"checkout_phone"`
}

type HotmartProduct struct {
	Name string `json:"name"`
}

type HotmartPurchase struct {
	Transaction string `json:"transaction"`
}

type HotmartData struct {
	Event       string           `json:"event"`
	Transaction string           `json:"transaction"`
	Buyer       *HotmartBuyer    `json:"buyer"`
	Product     *HotmartProduct  `json:"product"`
	Purchase    *HotmartPurchase `json:"purchase"`
}

type HotmartWebhookRequest struct {
	Event    string           `json:"event"`
	Status   string           `json:"status"`
	Buyer    *HotmartBuyer    `json:"buyer"`
	Product  *HotmartProduct  `json:"product"`
	Purchase *HotmartPurchase `json:"purchase"`
	Data     *HotmartData     `json:"data"`
}

func (r HotmartWebhookRequest) EventType() string {
	if r.Event != "" {
		return r.Event
	}
	if r.Data != nil {
		return r.Data.Event
	}
	return ""
}

func (r HotmartWebhookRequest) BuyerEmail() string {
	if r.Data != nil && r.Data.Buyer != nil && r.Data.Buyer.Email != "" {
		return r.Data.Buyer.Email
	}
	if r.Buyer != nil && r.Buyer.Email != "" {
		return r.Buyer.Email
	}
	if r.Data != nil && r.Data.Buyer != nil {
		return r.Data.Buyer.CheckoutPhone
	}
	return ""
}

func (r HotmartWebhookRequest) ProductName() string {
	if r.Data != nil && r.Data.Product != nil && r.Data.Product.Name != "" {
		return r.Data.Product.Name
	}
	if r.Product != nil {
		return r.Product.Name
	}
	return ""
}

func (r HotmartWebhookRequest) TransactionID() string {
	if r.Data != nil && r.Data.Purchase != nil && r.Data.Purchase.Transaction != "" {
		return r.Data.Purchase.Transaction
	}
	if r.Purchase != nil && r.Purchase.Transaction != "" {
		return r.Purchase.Transaction
	}
	if r.Data != nil {
		return r.Data.Transaction
	}
	return ""
}
