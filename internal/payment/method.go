package payment

// Method is a payment option the checkout screen can offer.
type Method struct {
	ID   string
	Name string
	Icon string
}

// Methods returns the payment options available to the checkout flow.
func Methods() []Method {
	return []Method{
		{ID: "cash", Name: "Tiền mặt", Icon: "banknote"},
		{ID: "card", Name: "Thẻ tín dụng", Icon: "creditcard"},
		{ID: "banking", Name: "Internet Banking", Icon: "building.columns"},
		{ID: "zalopay", Name: "ZaloPay", Icon: "wallet.pass"},
	}
}

// MethodByID looks up a payment method. The second return value reports
// whether the id is known.
func MethodByID(id string) (Method, bool) {
	for _, m := range Methods() {
		if m.ID == id {
			return m, true
		}
	}
	return Method{}, false
}
